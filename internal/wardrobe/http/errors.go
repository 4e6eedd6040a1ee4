package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/domain"
)

// respondError maps service errors to status codes. Unknown errors are logged and hidden.
func (h *Handler) respondError(c *gin.Context, err error) {
	var invalid *domain.InvalidOutfitError
	switch {
	case errors.As(err, &invalid):
		body := gin.H{"ok": false, "error": invalid.Error(), "garment_ids": invalid.GarmentIDs}
		if invalid.MissingA != "" {
			body["missing"] = []string{invalid.MissingA, invalid.MissingB}
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, domain.ErrGarmentNotFound),
		errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrOutfitNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrLinkExists):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrSelfLink),
		errors.Is(err, domain.ErrUnknownGarment),
		errors.Is(err, domain.ErrOutfitTooSmall):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrImagesDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal error"})
	}
}
