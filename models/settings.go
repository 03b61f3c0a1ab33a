package models

// DeliveryFees is the flat fee schedule, stored as a single settings document.
type DeliveryFees struct {
	Lagos  int64 `bson:"lagos" json:"lagos"`
	Others int64 `bson:"others" json:"others"`
}
