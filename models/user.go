package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type Address struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   *Address  `bson:"address,omitempty" json:"address,omitempty"`
	JoinDate  string    `bson:"joinDate" json:"joinDate"`
	Role      UserRole  `bson:"role,omitempty" json:"role,omitempty"`
	Orders    OrderRefs `bson:"orders,omitempty" json:"-"`
}

// OrderRefs is the raw `orders` reference field on a user document. Depending
// on which write path produced the record it is stored either as an array of
// order ids or as a map keyed by order id, and older records omit it entirely.
// All three shapes decode into a flat id list here, at the bson boundary, so
// nothing downstream has to inspect document types. Ordered is false for the
// map shape: the store does not guarantee key order there.
type OrderRefs struct {
	IDs     []string
	Ordered bool
}

func (r *OrderRefs) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	r.IDs = nil
	r.Ordered = true

	switch t {
	case bsontype.Array:
		vals, err := bson.Raw(data).Values()
		if err != nil {
			return nil // malformed reference field, treat as empty
		}
		for _, v := range vals {
			if s, ok := v.StringValueOK(); ok {
				r.IDs = append(r.IDs, s)
			}
		}
	case bsontype.EmbeddedDocument:
		elems, err := bson.Raw(data).Elements()
		if err != nil {
			return nil
		}
		r.Ordered = false
		for _, e := range elems {
			r.IDs = append(r.IDs, e.Key())
		}
	case bsontype.Null, bsontype.Undefined:
		// absent reference list
	default:
		// neither a sequence nor a mapping of ids, treat as empty
	}

	return nil
}

// IsZero lets omitempty drop an empty reference list on write, matching
// documents that never had the field.
func (r OrderRefs) IsZero() bool {
	return len(r.IDs) == 0
}

func (r OrderRefs) MarshalBSONValue() (bsontype.Type, []byte, error) {
	ids := r.IDs
	if ids == nil {
		ids = []string{}
	}
	return bson.MarshalValue(ids)
}

// ResolvedOrder is one entry of a denormalized order history. Order is nil
// when the referenced id no longer resolves to a stored order; the id is kept
// so the gap stays visible to callers instead of collapsing into a null.
type ResolvedOrder struct {
	ID    string
	Order *Order
}

func (r ResolvedOrder) MarshalJSON() ([]byte, error) {
	if r.Order != nil {
		return json.Marshal(r.Order)
	}
	return json.Marshal(struct {
		ID         string `json:"id"`
		Unresolved bool   `json:"unresolved"`
	}{r.ID, true})
}

// UserWithOrders is the read-model returned by the user listing: the stored
// user fields with the reference list replaced by resolved order documents.
// It is rebuilt on every read and never persisted.
type UserWithOrders struct {
	User
	Orders      []ResolvedOrder `json:"orders"`
	TotalOrders int             `json:"totalOrders"`
	TotalSpent  int64           `json:"totalSpent"`
}
