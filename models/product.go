package models

import "time"

type Product struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category" json:"category"`
	Price         int64     `bson:"price" json:"price"`
	OriginalPrice int64     `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	ProductImages []string  `bson:"productImages" json:"productImages"`
	Stock         int       `bson:"stock" json:"stock"`
	Sizes         []string  `bson:"sizes" json:"sizes"`
	Colors        []string  `bson:"colors" json:"colors"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
