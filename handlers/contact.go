package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/contact"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateContactMessage(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var newMessage contact.NewMessage
	if err := c.ShouldBindJSON(&newMessage); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}

	if err := h.validate.Struct(newMessage); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	id, err := h.cm.CreateMessage(c.Request.Context(), newMessage)
	if err != nil {
		slog.Error("error in inserting the contact message", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Message Creation Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.Hex()})
}
