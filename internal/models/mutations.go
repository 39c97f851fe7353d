package models

import (
	"fmt"

	"github.com/google/uuid"
)

var newID = uuid.NewString

// Direction indica hacia dónde se mueve un item del menú
type Direction int

const (
	Up Direction = iota
	Down
)

// ParseDirection convierte "up" / "down"
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return Up, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// --- Productos ---

// AddProduct agrega un producto con un ID nuevo
func (d *Document) AddProduct(in ProductInput) Product {
	p := Product{
		ID:          newID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Details:     in.Details,
	}
	d.Products = append(d.Products, p)
	return p
}

// FindProduct busca un producto por ID
func (d *Document) FindProduct(id string) (Product, bool) {
	for _, p := range d.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// EditProduct actualiza los campos presentes en el update. El ID nunca cambia.
func (d *Document) EditProduct(id string, u ProductUpdate) (Product, error) {
	for i := range d.Products {
		if d.Products[i].ID == id {
			d.Products[i].apply(u)
			return d.Products[i], nil
		}
	}
	return Product{}, ErrProductNotFound
}

// DeleteProduct elimina un producto por ID
func (d *Document) DeleteProduct(id string) error {
	for i := range d.Products {
		if d.Products[i].ID == id {
			d.Products, _ = removeAt(d.Products, i)
			return nil
		}
	}
	return ErrProductNotFound
}

// --- Banners ---

func (d *Document) AddBanner(in BannerInput) Banner {
	b := Banner{ID: newID(), Image: in.Image, Title: in.Title, Text: in.Text, Link: in.Link}
	d.Banners = append(d.Banners, b)
	return b
}

func (d *Document) FindBanner(id string) (Banner, bool) {
	for _, b := range d.Banners {
		if b.ID == id {
			return b, true
		}
	}
	return Banner{}, false
}

func (d *Document) EditBanner(id string, u BannerUpdate) (Banner, error) {
	for i := range d.Banners {
		if d.Banners[i].ID == id {
			d.Banners[i].apply(u)
			return d.Banners[i], nil
		}
	}
	return Banner{}, ErrBannerNotFound
}

func (d *Document) DeleteBanner(id string) error {
	for i := range d.Banners {
		if d.Banners[i].ID == id {
			d.Banners, _ = removeAt(d.Banners, i)
			return nil
		}
	}
	return ErrBannerNotFound
}

// --- Secciones posicionales ---

func (d *Document) AddNews(item NewsItem) {
	d.News = append(d.News, item)
}

func (d *Document) DeleteNews(index int) (err error) {
	d.News, err = removeAt(d.News, index)
	return err
}

func (d *Document) AddTestimonial(t Testimonial) {
	d.Testimonials = append(d.Testimonials, t)
}

func (d *Document) DeleteTestimonial(index int) (err error) {
	d.Testimonials, err = removeAt(d.Testimonials, index)
	return err
}

func (d *Document) AddFAQ(f FAQ) {
	d.FAQs = append(d.FAQs, f)
}

func (d *Document) DeleteFAQ(index int) (err error) {
	d.FAQs, err = removeAt(d.FAQs, index)
	return err
}

// --- Menú de navegación ---

// AddNavItem agrega un botón al final del menú. Rechaza etiquetas repetidas (comparación exacta).
func (d *Document) AddNavItem(label string) error {
	for _, existing := range d.NavMenu {
		if existing == label {
			return fmt.Errorf("%w: %q", ErrDuplicateNavItem, label)
		}
	}
	d.NavMenu = append(d.NavMenu, label)
	return nil
}

func (d *Document) RemoveNavItem(index int) (err error) {
	d.NavMenu, err = removeAt(d.NavMenu, index)
	return err
}

// MoveNavItem intercambia el item con su vecino. Fuera de rango no hace nada y devuelve false.
func (d *Document) MoveNavItem(index int, dir Direction) bool {
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if index < 0 || index >= len(d.NavMenu) || target < 0 || target >= len(d.NavMenu) {
		return false
	}
	d.NavMenu[index], d.NavMenu[target] = d.NavMenu[target], d.NavMenu[index]
	return true
}

// --- Textos ---

// SetTextField hace upsert de una clave en una de las cuatro secciones de textos
func (d *Document) SetTextField(s Section, key, value string) error {
	if !s.IsText() {
		return fmt.Errorf("%w: %s", ErrNotTextSection, s)
	}
	fields := d.TextFields(s)
	if fields == nil {
		fields = map[string]string{}
		switch s {
		case SectionHomeTexts:
			d.HomeTexts = fields
		case SectionContactInfo:
			d.ContactInfo = fields
		case SectionAboutUs:
			d.AboutUs = fields
		case SectionCTATexts:
			d.CTATexts = fields
		}
	}
	fields[key] = value
	return nil
}

func removeAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return items, ErrIndexOutOfRange
	}
	return append(items[:index:index], items[index+1:]...), nil
}
