package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"storefront-service/internal/bookings"
	"storefront-service/internal/contact"
	"storefront-service/internal/faqs"
	"storefront-service/internal/orders"
	"storefront-service/internal/payments"
	"storefront-service/internal/products"
	"storefront-service/internal/stores/mongodb"
	"storefront-service/middleware"
	"storefront-service/pkg/ctxmanage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store    mongodb.Store
	p        products.Conf
	o        orders.Conf
	b        bookings.Conf
	f        faqs.Conf
	cm       contact.Conf
	pay      payments.Conf
	validate *validator.Validate
}

func NewHandler(store mongodb.Store, p products.Conf, o orders.Conf, b bookings.Conf,
	f faqs.Conf, cm contact.Conf, pay payments.Conf) *Handler {
	return &Handler{
		store:    store,
		p:        p,
		o:        o,
		b:        b,
		f:        f,
		cm:       cm,
		pay:      pay,
		validate: validator.New(),
	}
}

func API(store mongodb.Store, p products.Conf, o orders.Conf, b bookings.Conf,
	f faqs.Conf, cm contact.Conf, pay payments.Conf) *gin.Engine {

	r := gin.New()
	mode := os.Getenv("GIN_MODE")
	if mode == gin.ReleaseMode {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	h := NewHandler(store, p, o, b, f, cm, pay)

	r.Use(middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	r.GET("/", h.Root)
	r.GET("/test", h.TestDatabase)
	r.GET("/schema", h.Schema)

	r.GET("/products", h.ListProducts)
	r.GET("/products/:id", h.GetProduct)
	r.POST("/products", h.CreateProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.ListOrders)

	r.POST("/bookings", h.CreateBooking)

	r.GET("/faqs", h.ListFAQs)
	r.POST("/faqs", h.CreateFAQ)

	r.POST("/contact", h.CreateContactMessage)

	r.POST("/payments/stripe-intent", h.CreateStripeIntent)
	r.POST("/payments/paystack-init", h.InitPaystackTransaction)

	return r
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Extensions Essence API is running"})
}

// TestDatabase is a connectivity diagnostic: it pings the store and lists the
// first few collection names, reporting each stage separately.
func (h *Handler) TestDatabase(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)
	fmt.Println("testDatabase handler ", traceId)

	response := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if err := h.store.Ping(c.Request.Context()); err != nil {
		response["database"] = "error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}
	response["database"] = "available"
	response["database_name"] = h.store.Name()

	names, err := h.store.CollectionNames(c.Request.Context())
	if err != nil {
		response["database"] = "connected but error: " + err.Error()
		c.JSON(http.StatusOK, response)
		return
	}
	if len(names) > 10 {
		names = names[:10]
	}
	response["collections"] = names
	response["database"] = "connected and working"
	response["connection_status"] = "connected"

	c.JSON(http.StatusOK, response)
}

// Schema lists the known collection names, useful for admin tooling.
func (h *Handler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": mongodb.Collections()})
}

// validationMessage turns the first field violation into a human-readable
// detail string naming the field and the broken constraint.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, vErr := range vErrs {
			switch vErr.Tag() {
			case "required":
				return vErr.Field() + " value missing"
			case "min", "gte":
				return vErr.Field() + " value is less than " + vErr.Param()
			case "email":
				return vErr.Field() + " is not a valid email address"
			case "http_url":
				return vErr.Field() + " is not a valid url"
			default:
				return vErr.Field() + " failed " + vErr.Tag() + " validation"
			}
		}
	}
	return http.StatusText(http.StatusBadRequest)
}
