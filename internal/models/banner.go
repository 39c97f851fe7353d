package models

// Banner es una imagen del carrusel de la página de inicio
type Banner struct {
	ID    string `json:"id" bson:"id"`
	Image string `json:"img" bson:"img"`
	Title string `json:"title,omitempty" bson:"title,omitempty"`
	Text  string `json:"text,omitempty" bson:"text,omitempty"`
	Link  string `json:"link,omitempty" bson:"link,omitempty"`
}

type BannerInput struct {
	Image string `json:"img" binding:"required"`
	Title string `json:"title"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

type BannerUpdate struct {
	Image *string `json:"img,omitempty" binding:"omitnil,min=1"`
	Title *string `json:"title,omitempty"`
	Text  *string `json:"text,omitempty"`
	Link  *string `json:"link,omitempty"`
}

func (u BannerUpdate) IsEmpty() bool {
	return u.Image == nil && u.Title == nil && u.Text == nil && u.Link == nil
}

func (b *Banner) apply(u BannerUpdate) {
	if u.Image != nil {
		b.Image = *u.Image
	}
	if u.Title != nil {
		b.Title = *u.Title
	}
	if u.Text != nil {
		b.Text = *u.Text
	}
	if u.Link != nil {
		b.Link = *u.Link
	}
}
