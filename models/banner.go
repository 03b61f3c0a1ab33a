package models

import "time"

// Banner is a hero banner shown on the storefront landing page.
type Banner struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Header        string    `bson:"header" json:"header"`
	SecondaryText string    `bson:"secondaryText" json:"secondaryText"`
	Image         string    `bson:"image" json:"image"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
