package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/bookings"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBooking(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var newBooking bookings.NewBooking
	if err := c.ShouldBindJSON(&newBooking); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}

	if err := h.validate.Struct(newBooking); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	id, err := h.b.CreateBooking(c.Request.Context(), newBooking)
	if err != nil {
		slog.Error("error in inserting the booking", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Booking Creation Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.Hex()})
}
