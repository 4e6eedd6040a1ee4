package http

import "github.com/gin-gonic/gin"

// Register attaches wardrobe routes to the given router group. The group must already resolve
// the owner (auth.WithUser or auth.EnsureUser).
func (h *Handler) Register(rg *gin.RouterGroup) {
	garments := rg.Group("/garments")
	garments.GET("", h.listGarments)
	garments.POST("", h.createGarment)
	garments.PATCH("/:id", h.updateGarment)
	garments.DELETE("/:id", h.deleteGarment)
	garments.PUT("/:id/image", h.uploadGarmentImage)

	links := rg.Group("/links")
	links.GET("", h.listLinks)
	links.POST("", h.createLink)
	links.DELETE("/:id", h.deleteLink)

	rg.GET("/graph", h.graph)

	outfits := rg.Group("/outfits")
	outfits.GET("", h.listOutfits)
	outfits.POST("", h.saveOutfit)
	outfits.POST("/validate", h.validateOutfit)
	outfits.POST("/generate", h.rateLimit(), h.generateOutfits)
	outfits.DELETE("/:id", h.deleteOutfit)
}
