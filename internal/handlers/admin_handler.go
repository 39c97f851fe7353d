package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"minerva-site/internal/models"
	"minerva-site/internal/services"
)

// AdminHandler expone las operaciones del panel de administración
type AdminHandler struct {
	svc *services.ContentService
}

func NewAdminHandler(svc *services.ContentService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var in models.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.svc.AddProduct(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PATCH /admin/products/:id
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if update.IsEmpty() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	product, err := h.svc.EditProduct(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /admin/products/:id
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

// POST /admin/banners
func (h *AdminHandler) CreateBanner(c *gin.Context) {
	var in models.BannerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	banner, err := h.svc.AddBanner(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, banner)
}

// PATCH /admin/banners/:id
func (h *AdminHandler) UpdateBanner(c *gin.Context) {
	var update models.BannerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if update.IsEmpty() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no valid fields to update"})
		return
	}

	banner, err := h.svc.EditBanner(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

// DELETE /admin/banners/:id
func (h *AdminHandler) DeleteBanner(c *gin.Context) {
	if err := h.svc.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "banner deleted"})
}

// POST /admin/news
func (h *AdminHandler) CreateNews(c *gin.Context) {
	var in models.NewsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.svc.AddNews(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /admin/news/:index
func (h *AdminHandler) DeleteNews(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteNews(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "news deleted"})
}

// POST /admin/testimonials
func (h *AdminHandler) CreateTestimonial(c *gin.Context) {
	var in models.TestimonialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.svc.AddTestimonial(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// DELETE /admin/testimonials/:index
func (h *AdminHandler) DeleteTestimonial(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTestimonial(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "testimonial deleted"})
}

// POST /admin/faqs
func (h *AdminHandler) CreateFAQ(c *gin.Context) {
	var in models.FAQInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	faq, err := h.svc.AddFAQ(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, faq)
}

// DELETE /admin/faqs/:index
func (h *AdminHandler) DeleteFAQ(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteFAQ(c.Request.Context(), index); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "faq deleted"})
}

// GET /admin/nav
func (h *AdminHandler) GetNav(c *gin.Context) {
	doc := h.svc.Document(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"nav_menu": doc.NavMenu})
}

// POST /admin/nav
func (h *AdminHandler) AddNavItem(c *gin.Context) {
	var in models.NavItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	menu, err := h.svc.AddNavItem(c.Request.Context(), in.Label)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"nav_menu": menu})
}

// DELETE /admin/nav/:index
func (h *AdminHandler) RemoveNavItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	menu, err := h.svc.RemoveNavItem(c.Request.Context(), index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nav_menu": menu})
}

// POST /admin/nav/:index/move
func (h *AdminHandler) MoveNavItem(c *gin.Context) {
	index, ok := indexParam(c)
	if !ok {
		return
	}

	var in models.MoveInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	dir, err := models.ParseDirection(in.Direction)
	if err != nil {
		respondError(c, err)
		return
	}

	menu, err := h.svc.MoveNavItem(c.Request.Context(), index, dir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nav_menu": menu})
}

// PUT /admin/texts/:section/:key
func (h *AdminHandler) SetTextField(c *gin.Context) {
	section, ok := sectionParam(c)
	if !ok {
		return
	}

	var in models.TextInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	fields, err := h.svc.SetTextField(c.Request.Context(), section, c.Param("key"), in.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// PATCH /admin/texts/:section
func (h *AdminHandler) SetTextFields(c *gin.Context) {
	section, ok := sectionParam(c)
	if !ok {
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no fields to update"})
		return
	}

	updated, err := h.svc.SetTextFields(c.Request.Context(), section, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
