package routes

import (
	"minerva-site/internal/handlers"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes monta la tienda en /v1, el panel en /admin y las imágenes en /images
func RegisterRoutes(router *gin.Engine, store *handlers.StorefrontHandler, admin *handlers.AdminHandler, assetDir string) {
	if assetDir != "" {
		router.Static(handlers.ImagesMount, assetDir)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	v1.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		v1.GET("/site", store.GetSite)
		v1.GET("/home", store.GetHome)
		v1.GET("/nav", store.GetNav)
		v1.GET("/products", store.ListProducts)
		v1.GET("/products/:id", store.GetProduct)
		v1.GET("/banners", store.ListBanners)
		v1.GET("/banners/:id", store.GetBanner)
		v1.GET("/news", store.ListNews)
		v1.GET("/testimonials", store.ListTestimonials)
		v1.GET("/faqs", store.ListFAQs)
		v1.GET("/texts/:section", store.GetTexts)
	}

	a := router.Group("/admin")
	{
		a.POST("/products", admin.CreateProduct)
		a.PATCH("/products/:id", admin.UpdateProduct)
		a.DELETE("/products/:id", admin.DeleteProduct)

		a.POST("/banners", admin.CreateBanner)
		a.PATCH("/banners/:id", admin.UpdateBanner)
		a.DELETE("/banners/:id", admin.DeleteBanner)

		a.POST("/news", admin.CreateNews)
		a.DELETE("/news/:index", admin.DeleteNews)

		a.POST("/testimonials", admin.CreateTestimonial)
		a.DELETE("/testimonials/:index", admin.DeleteTestimonial)

		a.POST("/faqs", admin.CreateFAQ)
		a.DELETE("/faqs/:index", admin.DeleteFAQ)

		a.GET("/nav", admin.GetNav)
		a.POST("/nav", admin.AddNavItem)
		a.DELETE("/nav/:index", admin.RemoveNavItem)
		a.POST("/nav/:index/move", admin.MoveNavItem)

		a.PUT("/texts/:section/:key", admin.SetTextField)
		a.PATCH("/texts/:section", admin.SetTextFields)
	}
}
