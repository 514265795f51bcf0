package handlers

import (
	"log/slog"
	"net/http"

	"storefront-service/internal/faqs"
	"storefront-service/pkg/ctxmanage"
	"storefront-service/pkg/logkey"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFAQs(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	list, err := h.f.ListFAQs(c.Request.Context())
	if err != nil {
		slog.Error("error in fetching faqs", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch faqs"})
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *Handler) CreateFAQ(c *gin.Context) {
	traceId := ctxmanage.GetTraceIdOfRequest(c)

	var newFAQ faqs.NewFAQ
	if err := c.ShouldBindJSON(&newFAQ); err != nil {
		slog.Error("json validation error", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": http.StatusText(http.StatusBadRequest)})
		return
	}

	if err := h.validate.Struct(newFAQ); err != nil {
		slog.Error("validation failed", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	id, err := h.f.CreateFAQ(c.Request.Context(), newFAQ)
	if err != nil {
		slog.Error("error in inserting the faq", slog.String(logkey.TraceID, traceId), slog.String(logkey.ERROR, err.Error()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "FAQ Creation Failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.Hex()})
}
