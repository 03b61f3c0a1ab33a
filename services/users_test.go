package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

// failingStore simulates the record store being unreachable for collection
// scans.
type failingStore struct {
	database.RecordStore
	err error
}

func (s failingStore) FindAll(ctx context.Context, collection string, out interface{}) error {
	return s.err
}

// flakyOrderStore fails the lookup of a single order id and delegates
// everything else.
type flakyOrderStore struct {
	database.RecordStore
	failID string
}

func (s flakyOrderStore) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	if collection == database.CollectionOrders && id == s.failID {
		return errors.New("connection reset")
	}
	return s.RecordStore.FindByID(ctx, collection, id, out)
}

func seedOrder(t *testing.T, store database.RecordStore, id string, amount int64, status models.OrderStatus) {
	t.Helper()
	err := store.Set(context.Background(), database.CollectionOrders, id, models.Order{
		UserID:   "u1",
		Amount:   amount,
		Currency: models.DefaultCurrency,
		Status:   status,
	})
	require.NoError(t, err)
}

func TestListUsersWithOrders_ResolvesReferencesInOrder(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 45000, models.OrderStatusPaid)
	seedOrder(t, store, "o2", 30000, models.OrderStatusCreated)

	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "ada@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1", "o2"}, Ordered: true},
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	orders := users[0].Orders
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
	require.NotNil(t, orders[0].Order)
	require.NotNil(t, orders[1].Order)
	assert.Equal(t, int64(45000), orders[0].Order.Amount)
	assert.Equal(t, models.OrderStatusCreated, orders[1].Order.Status)
}

func TestListUsersWithOrders_EmptyCollection(t *testing.T) {
	store := database.NewMemoryStore()

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestListUsersWithOrders_OneEntryPerUser(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 10000, models.OrderStatusPaid)

	// Every reference of u1 is dangling; u2 has one good and one bad.
	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "first@example.com",
		Orders: models.OrderRefs{IDs: []string{"gone-1", "gone-2"}, Ordered: true},
	}))
	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u2", models.User{
		Email:  "second@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1", "gone-3"}, Ordered: true},
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)

	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
	assert.Len(t, users[0].Orders, 2)
	assert.Len(t, users[1].Orders, 2)
}

func TestListUsersWithOrders_MapShapedRefs(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 5000, models.OrderStatusPaid)
	seedOrder(t, store, "o2", 7500, models.OrderStatusPaid)

	// Some write paths store the reference list as a map keyed by order id.
	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", bson.M{
		"email":  "map@example.com",
		"orders": bson.M{"o1": true, "o2": true},
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	ids := make([]string, 0, 2)
	for _, o := range users[0].Orders {
		require.NotNil(t, o.Order)
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []string{"o1", "o2"}, ids)
}

func TestListUsersWithOrders_MalformedRefsTreatedAsEmpty(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", bson.M{
		"email":  "odd@example.com",
		"orders": "not-a-reference-list",
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Orders)
	assert.Zero(t, users[0].TotalOrders)
}

func TestListUsersWithOrders_MissingOrderTolerated(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 20000, models.OrderStatusPaid)

	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "ada@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1", "missing"}, Ordered: true},
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	orders := users[0].Orders
	require.Len(t, orders, 2)
	require.NotNil(t, orders[0].Order)
	assert.Equal(t, int64(20000), orders[0].Order.Amount)
	assert.Equal(t, "missing", orders[1].ID)
	assert.Nil(t, orders[1].Order)
}

func TestListUsersWithOrders_OrderFetchErrorTolerated(t *testing.T) {
	mem := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, mem, "o1", 15000, models.OrderStatusPaid)
	require.NoError(t, mem.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "ada@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1", "bad"}, Ordered: true},
	}))

	svc := NewUserService(flakyOrderStore{RecordStore: mem, failID: "bad"})
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	orders := users[0].Orders
	require.Len(t, orders, 2)
	assert.NotNil(t, orders[0].Order)
	assert.Nil(t, orders[1].Order)
}

func TestListUsersWithOrders_TopLevelFetchFails(t *testing.T) {
	mem := database.NewMemoryStore()
	storeErr := errors.New("store unreachable")

	svc := NewUserService(failingStore{RecordStore: mem, err: storeErr})
	users, err := svc.ListUsersWithOrders(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.Nil(t, users)
}

func TestListUsersWithOrders_Scenario(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 85000, models.OrderStatusPaid)

	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "u1@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1"}, Ordered: true},
	}))
	// u2 has no orders field at all.
	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u2", models.User{
		Email: "u2@example.com",
	}))

	svc := NewUserService(store)
	users, err := svc.ListUsersWithOrders(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	u1 := users[0]
	require.Len(t, u1.Orders, 1)
	require.NotNil(t, u1.Orders[0].Order)
	assert.Equal(t, "o1", u1.Orders[0].Order.ID)
	assert.Equal(t, int64(85000), u1.Orders[0].Order.Amount)
	assert.Equal(t, models.OrderStatusPaid, u1.Orders[0].Order.Status)
	assert.Equal(t, 1, u1.TotalOrders)
	assert.Equal(t, int64(85000), u1.TotalSpent)

	u2 := users[1]
	assert.NotNil(t, u2.Orders)
	assert.Empty(t, u2.Orders)
	assert.Zero(t, u2.TotalSpent)
}

func TestGetUserByID(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	seedOrder(t, store, "o1", 12000, models.OrderStatusPaid)
	require.NoError(t, store.Set(ctx, database.CollectionUsers, "u1", models.User{
		Email:  "ada@example.com",
		Orders: models.OrderRefs{IDs: []string{"o1"}, Ordered: true},
	}))

	svc := NewUserService(store)

	user, err := svc.GetUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	require.Len(t, user.Orders, 1)
	assert.Equal(t, int64(12000), user.Orders[0].Order.Amount)

	_, err = svc.GetUserByID(ctx, "nope")
	assert.ErrorIs(t, err, database.ErrNotFound)
}
