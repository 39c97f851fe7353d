package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"

	"minerva-site/internal/cache"
	"minerva-site/internal/logger"
	"minerva-site/internal/models"
)

// CachePrefix agrupa todas las respuestas de la tienda en el caché
const CachePrefix = "storefront:"

const bestSellersCount = 3

// ContentReader es lo único que la tienda necesita del servicio
type ContentReader interface {
	Document(ctx context.Context) *models.Document
}

type StorefrontHandler struct {
	content ContentReader
	cache   *cache.Cache
	images  *ImageResolver
	md      goldmark.Markdown
	log     *logger.Logger
}

func NewStorefrontHandler(content ContentReader, c *cache.Cache, images *ImageResolver, log *logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		content: content,
		cache:   c,
		images:  images,
		md:      newMarkdown(),
		log:     log.WithComponent("storefront"),
	}
}

type NewsView struct {
	models.NewsItem
	ContentHTML string `json:"contenido_html"`
}

type FAQView struct {
	models.FAQ
	AnswerHTML string `json:"answer_html"`
}

type HomeResponse struct {
	HomeTexts    map[string]string    `json:"home_texts"`
	CTATexts     map[string]string    `json:"cta_texts"`
	Banners      []models.Banner      `json:"banners"`
	BestSellers  []models.Product     `json:"best_sellers"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

type SiteResponse struct {
	Products     []models.Product     `json:"products"`
	Banners      []models.Banner      `json:"banners"`
	News         []NewsView           `json:"news"`
	Testimonials []models.Testimonial `json:"testimonials"`
	NavMenu      []string             `json:"nav_menu"`
	HomeTexts    map[string]string    `json:"home_texts"`
	ContactInfo  map[string]string    `json:"contact_info"`
	AboutUs      map[string]string    `json:"about_us"`
	FAQs         []FAQView            `json:"faqs"`
	CTATexts     map[string]string    `json:"cta_texts"`
}

type ProductListResponse struct {
	Query    string           `json:"query,omitempty"`
	Total    int              `json:"total"`
	Products []models.Product `json:"products"`
}

// serve responde desde el caché o arma la respuesta y la guarda serializada
func (h *StorefrontHandler) serve(c *gin.Context, build func(doc *models.Document) (interface{}, int)) {
	key := CachePrefix + c.Request.URL.RequestURI()

	if data, found := h.cache.GetBytes(key); found {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	gen := h.cache.Generation()
	body, status := build(h.content.Document(c.Request.Context()))
	if status != http.StatusOK {
		c.JSON(status, body)
		return
	}

	data, err := h.cache.Marshal(key, body, gen)
	if err != nil {
		h.log.Errorw("could not encode response", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not encode response"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// GET /v1/site
func (h *StorefrontHandler) GetSite(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return SiteResponse{
			Products:     h.products(doc.Products),
			Banners:      h.banners(doc.Banners),
			News:         h.news(doc.News),
			Testimonials: h.testimonials(doc.Testimonials),
			NavMenu:      doc.NavMenu,
			HomeTexts:    doc.HomeTexts,
			ContactInfo:  doc.ContactInfo,
			AboutUs:      doc.AboutUs,
			FAQs:         h.faqs(doc.FAQs),
			CTATexts:     doc.CTATexts,
		}, http.StatusOK
	})
}

// GET /v1/home
func (h *StorefrontHandler) GetHome(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		best := doc.Products
		if len(best) > bestSellersCount {
			best = best[:bestSellersCount]
		}
		return HomeResponse{
			HomeTexts:    doc.HomeTexts,
			CTATexts:     doc.CTATexts,
			Banners:      h.banners(doc.Banners),
			BestSellers:  h.products(best),
			Testimonials: h.testimonials(doc.Testimonials),
		}, http.StatusOK
	})
}

// GET /v1/nav
func (h *StorefrontHandler) GetNav(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return gin.H{"nav_menu": doc.NavMenu}, http.StatusOK
	})
}

// GET /v1/products?q=
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		products := filterProducts(doc.Products, query)
		return ProductListResponse{
			Query:    query,
			Total:    len(products),
			Products: h.products(products),
		}, http.StatusOK
	})
}

// GET /v1/products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		product, found := doc.FindProduct(id)
		if !found {
			return ErrorResponse{Error: models.ErrProductNotFound.Error()}, http.StatusNotFound
		}
		return h.product(product), http.StatusOK
	})
}

// GET /v1/banners
func (h *StorefrontHandler) ListBanners(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return h.banners(doc.Banners), http.StatusOK
	})
}

// GET /v1/banners/:id
func (h *StorefrontHandler) GetBanner(c *gin.Context) {
	id := c.Param("id")
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		banner, found := doc.FindBanner(id)
		if !found {
			return ErrorResponse{Error: models.ErrBannerNotFound.Error()}, http.StatusNotFound
		}
		return h.banners([]models.Banner{banner})[0], http.StatusOK
	})
}

// GET /v1/news
func (h *StorefrontHandler) ListNews(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return h.news(doc.News), http.StatusOK
	})
}

// GET /v1/testimonials
func (h *StorefrontHandler) ListTestimonials(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return h.testimonials(doc.Testimonials), http.StatusOK
	})
}

// GET /v1/faqs
func (h *StorefrontHandler) ListFAQs(c *gin.Context) {
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return h.faqs(doc.FAQs), http.StatusOK
	})
}

// GET /v1/texts/:section
func (h *StorefrontHandler) GetTexts(c *gin.Context) {
	section, ok := sectionParam(c)
	if !ok {
		return
	}
	h.serve(c, func(doc *models.Document) (interface{}, int) {
		return doc.TextFields(section), http.StatusOK
	})
}

// filterProducts busca sin distinguir mayúsculas en nombre y descripción
func filterProducts(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	q := strings.ToLower(query)
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

func (h *StorefrontHandler) product(p models.Product) models.Product {
	p.Image = h.images.Resolve(p.Image)
	return p
}

func (h *StorefrontHandler) products(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = h.product(p)
	}
	return out
}

func (h *StorefrontHandler) banners(in []models.Banner) []models.Banner {
	out := make([]models.Banner, len(in))
	for i, b := range in {
		b.Image = h.images.Resolve(b.Image)
		out[i] = b
	}
	return out
}

func (h *StorefrontHandler) testimonials(in []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, len(in))
	for i, t := range in {
		t.Image = h.images.Resolve(t.Image)
		out[i] = t
	}
	return out
}

func (h *StorefrontHandler) news(in []models.NewsItem) []NewsView {
	out := make([]NewsView, len(in))
	for i, n := range in {
		n.Image = h.images.Resolve(n.Image)
		out[i] = NewsView{NewsItem: n, ContentHTML: renderMarkdown(h.md, n.Content)}
	}
	return out
}

func (h *StorefrontHandler) faqs(in []models.FAQ) []FAQView {
	out := make([]FAQView, len(in))
	for i, f := range in {
		out[i] = FAQView{FAQ: f, AnswerHTML: renderMarkdown(h.md, f.Answer)}
	}
	return out
}
