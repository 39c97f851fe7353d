package models

// DefaultNavMenu es el menú usado cuando nav_menu no existe
var DefaultNavMenu = []string{
	"Inicio",
	"Peluquería",
	"Barbería",
	"Accesorios",
	"Herramientas",
	"Equipamientos",
	"Novedades",
	"Contacto",
	"Sobre Nosotros",
}

// Document es el contenido completo del sitio. Siempre se persiste entero.
type Document struct {
	Products     []Product         `json:"products" bson:"products"`
	Banners      []Banner          `json:"banners" bson:"banners"`
	News         []NewsItem        `json:"news" bson:"news"`
	Testimonials []Testimonial     `json:"testimonials" bson:"testimonials"`
	NavMenu      []string          `json:"nav_menu" bson:"nav_menu"`
	HomeTexts    map[string]string `json:"home_texts" bson:"home_texts"`
	ContactInfo  map[string]string `json:"contact_info" bson:"contact_info"`
	AboutUs      map[string]string `json:"about_us" bson:"about_us"`
	FAQs         []FAQ             `json:"faqs" bson:"faqs"`
	CTATexts     map[string]string `json:"cta_texts" bson:"cta_texts"`
}

// NewDefaultDocument devuelve un documento con todas las secciones en su valor por defecto.
func NewDefaultDocument() *Document {
	doc := &Document{}
	for _, s := range Sections() {
		doc.ResetSection(s)
	}
	return doc
}

// ResetSection vuelve una sección a su valor por defecto
func (d *Document) ResetSection(s Section) {
	switch s {
	case SectionProducts:
		d.Products = []Product{}
	case SectionBanners:
		d.Banners = []Banner{}
	case SectionNews:
		d.News = []NewsItem{}
	case SectionTestimonials:
		d.Testimonials = []Testimonial{}
	case SectionNavMenu:
		d.NavMenu = append([]string(nil), DefaultNavMenu...)
	case SectionHomeTexts:
		d.HomeTexts = map[string]string{}
	case SectionContactInfo:
		d.ContactInfo = map[string]string{}
	case SectionAboutUs:
		d.AboutUs = map[string]string{}
	case SectionFAQs:
		d.FAQs = []FAQ{}
	case SectionCTATexts:
		d.CTATexts = map[string]string{}
	}
}

// Normalize reemplaza slices y mapas nil por vacíos para serializar [] y {} en lugar de null.
// Un nav_menu vacío sigue vacío.
func (d *Document) Normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Banners == nil {
		d.Banners = []Banner{}
	}
	if d.News == nil {
		d.News = []NewsItem{}
	}
	if d.Testimonials == nil {
		d.Testimonials = []Testimonial{}
	}
	if d.NavMenu == nil {
		d.NavMenu = []string{}
	}
	if d.HomeTexts == nil {
		d.HomeTexts = map[string]string{}
	}
	if d.ContactInfo == nil {
		d.ContactInfo = map[string]string{}
	}
	if d.AboutUs == nil {
		d.AboutUs = map[string]string{}
	}
	if d.FAQs == nil {
		d.FAQs = []FAQ{}
	}
	if d.CTATexts == nil {
		d.CTATexts = map[string]string{}
	}
}

// SectionPtr deja la sección en cero y devuelve un puntero al campo, listo para decodificar
func (d *Document) SectionPtr(s Section) interface{} {
	switch s {
	case SectionProducts:
		d.Products = nil
		return &d.Products
	case SectionBanners:
		d.Banners = nil
		return &d.Banners
	case SectionNews:
		d.News = nil
		return &d.News
	case SectionTestimonials:
		d.Testimonials = nil
		return &d.Testimonials
	case SectionNavMenu:
		d.NavMenu = nil
		return &d.NavMenu
	case SectionHomeTexts:
		d.HomeTexts = nil
		return &d.HomeTexts
	case SectionContactInfo:
		d.ContactInfo = nil
		return &d.ContactInfo
	case SectionAboutUs:
		d.AboutUs = nil
		return &d.AboutUs
	case SectionFAQs:
		d.FAQs = nil
		return &d.FAQs
	case SectionCTATexts:
		d.CTATexts = nil
		return &d.CTATexts
	}
	return nil
}

// TextFields devuelve el mapa de una sección de textos, o nil para las demás
func (d *Document) TextFields(s Section) map[string]string {
	switch s {
	case SectionHomeTexts:
		return d.HomeTexts
	case SectionContactInfo:
		return d.ContactInfo
	case SectionAboutUs:
		return d.AboutUs
	case SectionCTATexts:
		return d.CTATexts
	}
	return nil
}
