package models

import (
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
)

// NewsItem es una entrada de la página de novedades. El contenido es markdown.
type NewsItem struct {
	Title   string `json:"titulo" bson:"titulo"`
	Date    string `json:"fecha" bson:"fecha"`
	Content string `json:"contenido" bson:"contenido"`
	Image   string `json:"imagen" bson:"imagen"`
}

// Testimonial es la opinión de un cliente
type Testimonial struct {
	Name  string `json:"name" bson:"name"`
	City  string `json:"city" bson:"city"`
	Quote string `json:"quote" bson:"quote"`
	Image string `json:"image" bson:"image"`
}

// legacyTestimonial acepta las claves viejas author/text
type legacyTestimonial struct {
	Name   string `json:"name" bson:"name"`
	City   string `json:"city" bson:"city"`
	Quote  string `json:"quote" bson:"quote"`
	Image  string `json:"image" bson:"image"`
	Author string `json:"author" bson:"author"`
	Text   string `json:"text" bson:"text"`
}

func (l legacyTestimonial) canonical() Testimonial {
	t := Testimonial{Name: l.Name, City: l.City, Quote: l.Quote, Image: l.Image}
	if t.Name == "" {
		t.Name = l.Author
	}
	if t.Quote == "" {
		t.Quote = l.Text
	}
	return t
}

// UnmarshalJSON y UnmarshalBSON aceptan también el formato viejo {"author", "text"}
func (t *Testimonial) UnmarshalJSON(data []byte) error {
	var raw legacyTestimonial
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = raw.canonical()
	return nil
}

func (t *Testimonial) UnmarshalBSON(data []byte) error {
	var raw legacyTestimonial
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = raw.canonical()
	return nil
}

type FAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
}

// legacyFAQ acepta las claves viejas q/a
type legacyFAQ struct {
	Question string `json:"question" bson:"question"`
	Answer   string `json:"answer" bson:"answer"`
	Q        string `json:"q" bson:"q"`
	A        string `json:"a" bson:"a"`
}

func (l legacyFAQ) canonical() FAQ {
	f := FAQ{Question: l.Question, Answer: l.Answer}
	if f.Question == "" {
		f.Question = l.Q
	}
	if f.Answer == "" {
		f.Answer = l.A
	}
	return f
}

// UnmarshalJSON y UnmarshalBSON aceptan también las claves cortas {"q", "a"}
func (f *FAQ) UnmarshalJSON(data []byte) error {
	var raw legacyFAQ
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = raw.canonical()
	return nil
}

func (f *FAQ) UnmarshalBSON(data []byte) error {
	var raw legacyFAQ
	if err := bson.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = raw.canonical()
	return nil
}
