package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func decodeUser(t *testing.T, doc interface{}) User {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var u User
	require.NoError(t, bson.Unmarshal(raw, &u))
	return u
}

func TestOrderRefs_DecodeArray(t *testing.T) {
	u := decodeUser(t, bson.M{"orders": bson.A{"o1", "o2", "o3"}})

	assert.Equal(t, []string{"o1", "o2", "o3"}, u.Orders.IDs)
	assert.True(t, u.Orders.Ordered)
}

func TestOrderRefs_DecodeMap(t *testing.T) {
	u := decodeUser(t, bson.M{"orders": bson.D{{Key: "o1", Value: true}, {Key: "o2", Value: 1}}})

	assert.ElementsMatch(t, []string{"o1", "o2"}, u.Orders.IDs)
	assert.False(t, u.Orders.Ordered)
}

func TestOrderRefs_DecodeAbsentAndNull(t *testing.T) {
	absent := decodeUser(t, bson.M{"email": "a@b.c"})
	assert.Empty(t, absent.Orders.IDs)

	null := decodeUser(t, bson.M{"orders": nil})
	assert.Empty(t, null.Orders.IDs)
}

func TestOrderRefs_DecodeMalformed(t *testing.T) {
	scalar := decodeUser(t, bson.M{"orders": "oops"})
	assert.Empty(t, scalar.Orders.IDs)

	number := decodeUser(t, bson.M{"orders": 42})
	assert.Empty(t, number.Orders.IDs)
}

func TestOrderRefs_DecodeArraySkipsNonStrings(t *testing.T) {
	u := decodeUser(t, bson.M{"orders": bson.A{"o1", 7, "o2"}})

	assert.Equal(t, []string{"o1", "o2"}, u.Orders.IDs)
}

func TestOrderRefs_MarshalRoundTrip(t *testing.T) {
	in := User{
		Email:  "a@b.c",
		Orders: OrderRefs{IDs: []string{"o1", "o2"}, Ordered: true},
	}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)
	var out User
	require.NoError(t, bson.Unmarshal(raw, &out))

	assert.Equal(t, in.Orders.IDs, out.Orders.IDs)
	assert.True(t, out.Orders.Ordered)
}

func TestResolvedOrder_MarshalJSON(t *testing.T) {
	resolved := ResolvedOrder{
		ID:    "o1",
		Order: &Order{ID: "o1", Amount: 85000, Currency: DefaultCurrency, Status: OrderStatusPaid},
	}
	data, err := json.Marshal(resolved)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "o1", got["id"])
	assert.Equal(t, float64(85000), got["amount"])
	assert.Equal(t, "PAID", got["status"])
	assert.NotContains(t, got, "unresolved")

	unresolved := ResolvedOrder{ID: "gone"}
	data, err = json.Marshal(unresolved)
	require.NoError(t, err)

	got = nil
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "gone", got["id"])
	assert.Equal(t, true, got["unresolved"])
}
