package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meshfit/meshfit-backend/internal/auth"
	"github.com/meshfit/meshfit-backend/internal/wardrobe/service"
)

const maxImageBytes = 10 << 20

// ownerID reads the owner resolved by the auth middleware and aborts with 401 when it is missing.
func ownerID(c *gin.Context) (string, bool) {
	id := auth.UserDBID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return "", false
	}
	return id, true
}

func (h *Handler) listGarments(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListGarments(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "garments": items})
}

func (h *Handler) createGarment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req garmentReq
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.svc.CreateGarment(c.Request.Context(), owner, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "garment": g})
}

func (h *Handler) updateGarment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req garmentPatchReq
	if !bindJSON(c, &req) {
		return
	}

	g, err := h.svc.UpdateGarment(c.Request.Context(), owner, c.Param("id"), req.toPatch())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "garment": g})
}

func (h *Handler) deleteGarment(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteGarment(c.Request.Context(), owner, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) uploadGarmentImage(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing image file"})
		return
	}
	if fh.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": "image too large"})
		return
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file is not an image"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.respondError(c, err)
		return
	}
	defer f.Close()

	g, err := h.svc.UploadGarmentImage(c.Request.Context(), owner, c.Param("id"), service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "garment": g})
}
