package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listLinks(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	items, err := h.svc.ListLinks(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "links": items})
}

func (h *Handler) createLink(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	var req linkReq
	if !bindJSON(c, &req) {
		return
	}

	l, err := h.svc.CreateLink(c.Request.Context(), owner, req.toDomain())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "link": l})
}

func (h *Handler) deleteLink(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteLink(c.Request.Context(), owner, c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) graph(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	view, err := h.svc.Graph(c.Request.Context(), owner)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "garments": view.Garments, "links": view.Links})
}
