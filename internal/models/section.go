package models

// Section identifica una de las diez claves de primer nivel del documento
type Section string

const (
	SectionProducts     Section = "products"
	SectionBanners      Section = "banners"
	SectionNews         Section = "news"
	SectionTestimonials Section = "testimonials"
	SectionNavMenu      Section = "nav_menu"
	SectionHomeTexts    Section = "home_texts"
	SectionContactInfo  Section = "contact_info"
	SectionAboutUs      Section = "about_us"
	SectionFAQs         Section = "faqs"
	SectionCTATexts     Section = "cta_texts"
)

// Sections lista todas las secciones en el orden en que se persisten
func Sections() []Section {
	return []Section{
		SectionProducts,
		SectionBanners,
		SectionNews,
		SectionTestimonials,
		SectionNavMenu,
		SectionHomeTexts,
		SectionContactInfo,
		SectionAboutUs,
		SectionFAQs,
		SectionCTATexts,
	}
}

// IsText indica si la sección es un mapa libre de textos
func (s Section) IsText() bool {
	switch s {
	case SectionHomeTexts, SectionContactInfo, SectionAboutUs, SectionCTATexts:
		return true
	}
	return false
}

// ParseSection valida un nombre de sección
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections() {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}
