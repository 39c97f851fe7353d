package models

// Product representa un producto en el catálogo
type Product struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"nombre" bson:"nombre"`
	Description string `json:"descripcion" bson:"descripcion"`
	Price       string `json:"precio" bson:"precio"`
	Image       string `json:"imagen" bson:"imagen"`
	Details     string `json:"detalles" bson:"detalles"`
}

// ProductInput son los campos para crear un producto
type ProductInput struct {
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion" binding:"required"`
	Price       string `json:"precio" binding:"required"`
	Image       string `json:"imagen"`
	Details     string `json:"detalles"`
}

// ProductUpdate representa los campos actualizables de un producto
type ProductUpdate struct {
	Name        *string `json:"nombre,omitempty" binding:"omitnil,min=1"`
	Description *string `json:"descripcion,omitempty" binding:"omitnil,min=1"`
	Price       *string `json:"precio,omitempty" binding:"omitnil,min=1"`
	Image       *string `json:"imagen,omitempty"`
	Details     *string `json:"detalles,omitempty"`
}

// IsEmpty indica si el update no trae ningún campo
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Image == nil && u.Details == nil
}

func (p *Product) apply(u ProductUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Details != nil {
		p.Details = *u.Details
	}
}
