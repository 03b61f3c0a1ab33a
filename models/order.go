package models

type OrderStatus string

const (
	OrderStatusCreated         OrderStatus = "CREATED"
	OrderStatusInitiated       OrderStatus = "INITIATED"
	OrderStatusAwaitingWebhook OrderStatus = "AWAITING_WEBHOOK"
	OrderStatusPaid            OrderStatus = "PAID"
	OrderStatusFailed          OrderStatus = "FAILED"
	OrderStatusCancelled       OrderStatus = "CANCELLED"
	OrderStatusRefunded        OrderStatus = "REFUNDED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusInitiated, OrderStatusAwaitingWebhook,
		OrderStatusPaid, OrderStatusFailed, OrderStatusCancelled, OrderStatusRefunded:
		return true
	}
	return false
}

// Delivery locations the store ships to; the fee schedule only distinguishes
// Lagos from everywhere else.
const (
	DeliveryLagos  = "lagos"
	DeliveryOthers = "others"
)

const DefaultCurrency = "NGN"

type OrderItem struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Price    int64  `bson:"price" json:"price"`
	Image    string `bson:"image,omitempty" json:"image,omitempty"`
	Size     string `bson:"size,omitempty" json:"size,omitempty"`
	Color    string `bson:"color,omitempty" json:"color,omitempty"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Category string `bson:"category,omitempty" json:"category,omitempty"`
}

// Customer is the checkout-time snapshot embedded in an order. It is frozen
// at order creation and does not track later edits to the user record.
type Customer struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type Order struct {
	ID               string      `bson:"_id,omitempty" json:"id"`
	UserID           string      `bson:"userId" json:"userId"`
	Items            []OrderItem `bson:"items" json:"items"`
	Amount           int64       `bson:"amount" json:"amount"` // kobo
	Currency         string      `bson:"currency" json:"currency"`
	Status           OrderStatus `bson:"status" json:"status"`
	Reference        string      `bson:"reference,omitempty" json:"reference,omitempty"`
	AccessCode       string      `bson:"accessCode,omitempty" json:"accessCode,omitempty"`
	Customer         Customer    `bson:"customer" json:"customer"`
	DeliveryAddress  *Address    `bson:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	DeliveryFee      int64       `bson:"deliveryFee" json:"deliveryFee"`
	DeliveryLocation string      `bson:"deliveryLocation,omitempty" json:"deliveryLocation,omitempty"`
	CreatedAt        int64       `bson:"createdAt" json:"createdAt"` // epoch millis
	UpdatedAt        int64       `bson:"updatedAt" json:"updatedAt"`
}
