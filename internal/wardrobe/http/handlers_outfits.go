package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/service"
)

func (h *Handler) generateOutfits(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req generateReq
	if !bindJSON(c, &req) {
		return
	}

	cands, err := h.svc.GenerateOutfits(c.Request.Context(), owner, req.toInput())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "outfits": cands})
}

func (h *Handler) listOutfits(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListOutfits(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "outfits": items})
}

func (h *Handler) saveOutfit(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req saveOutfitReq
	if !bindJSON(c, &req) {
		return
	}

	o, err := h.svc.SaveOutfit(c.Request.Context(), owner, service.SaveInput{
		GarmentIDs:  req.GarmentIDs,
		Occasion:    strings.TrimSpace(req.Occasion),
		Description: strings.TrimSpace(req.Description),
		Model:       cleanNotes(req.Model),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "outfit": o})
}

func (h *Handler) validateOutfit(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req validateOutfitReq
	if !bindJSON(c, &req) {
		return
	}

	if err := h.svc.ValidateOutfit(c.Request.Context(), owner, req.GarmentIDs); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "valid": true})
}

func (h *Handler) deleteOutfit(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteOutfit(c.Request.Context(), owner, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
