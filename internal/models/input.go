package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// Valores que completa el panel cuando el formulario los deja vacíos
const (
	DefaultNewsImage        = "https://via.placeholder.com/400x300.png?text=Novedad"
	DefaultNewsDate         = "Fecha no disponible"
	DefaultTestimonialImage = "https://via.placeholder.com/100x100.png?text=User"
)

type NewsInput struct {
	Title   string `json:"titulo" binding:"required"`
	Content string `json:"contenido" binding:"required"`
	Date    string `json:"fecha"`
	Image   string `json:"imagen"`
}

// NewsItem arma la novedad completando fecha e imagen por defecto
func (in NewsInput) NewsItem() NewsItem {
	item := NewsItem{Title: in.Title, Content: in.Content, Date: in.Date, Image: in.Image}
	if item.Date == "" {
		item.Date = DefaultNewsDate
	}
	if item.Image == "" {
		item.Image = DefaultNewsImage
	}
	return item
}

type TestimonialInput struct {
	Name  string `json:"name" binding:"required"`
	City  string `json:"city"`
	Quote string `json:"quote" binding:"required"`
	Image string `json:"image"`
}

func (in TestimonialInput) Testimonial() Testimonial {
	t := Testimonial{Name: in.Name, City: in.City, Quote: in.Quote, Image: in.Image}
	if t.Image == "" {
		t.Image = DefaultTestimonialImage
	}
	return t
}

type FAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type NavItemInput struct {
	Label string `json:"label" binding:"required"`
}

type MoveInput struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type TextInput struct {
	Value string `json:"value"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate aplica las mismas reglas `binding` que usa gin, para los clientes que no pasan por HTTP
func Validate(v interface{}) error {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")
	})
	return validate.Struct(v)
}
