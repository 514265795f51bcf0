package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront-service/internal/payments"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

// Amounts are pointers so an explicit 0 still counts as present.

type stripeIntentPayload struct {
	Amount   *int64 `json:"amount" validate:"required"`
	Currency string `json:"currency"`
}

type paystackInitPayload struct {
	Email    string `json:"email" validate:"required"`
	Amount   *int64 `json:"amount" validate:"required"`
	Currency string `json:"currency"`
}

func (h *Handler) CreateStripeIntent(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var payload stripeIntentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}
	if payload.Currency == "" {
		payload.Currency = "NGN"
	}

	intent, err := h.pay.CreateStripeIntent(c.Request.Context(), *payload.Amount, payload.Currency)
	if err != nil {
		h.respondPaymentError(c, traceId, "stripe", err)
		return
	}

	if intent.Mock {
		c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret, "mock": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

func (h *Handler) InitPaystackTransaction(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var payload paystackInitPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}
	if err := h.validate.Struct(payload); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}
	if payload.Currency == "" {
		payload.Currency = "NGN"
	}

	tx, err := h.pay.InitPaystackTransaction(c.Request.Context(), payload.Email, *payload.Amount, payload.Currency)
	if err != nil {
		h.respondPaymentError(c, traceId, "paystack", err)
		return
	}

	if tx.Mock {
		c.JSON(http.StatusOK, gin.H{"authorization_url": tx.AuthorizationURL, "reference": tx.Reference, "mock": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authorization_url": tx.AuthorizationURL, "reference": tx.Reference})
}

// respondPaymentError surfaces provider failures with the provider's own
// status and body; anything else is a server fault.
func (h *Handler) respondPaymentError(c *gin.Context, traceId, provider string, err error) {
	var remote *payments.RemoteError
	if errors.As(err, &remote) {
		slog.Error("payment provider error", slog.String(logkey.TraceID, traceId),
			slog.String("Provider", provider), slog.Int("Status", remote.Status), slog.String(logkey.ERROR, remote.Body))
		c.AbortWithStatusJSON(remote.Status, gin.H{"error": remote.Body})
		return
	}
	slog.Error("payment request failed", slog.String(logkey.TraceID, traceId),
		slog.String("Provider", provider), slog.String(logkey.ERROR, err.Error()))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Payment request failed"})
}
