// Package services holds the business logic between the HTTP handlers and the
// record store.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/wearsaintpaul/admin-backend-go/database"
	"github.com/wearsaintpaul/admin-backend-go/models"
)

// maxConcurrentUsers caps how many users are resolved at once so a large user
// base cannot fan out into an unbounded number of store reads.
const maxConcurrentUsers = 8

// UserService builds the denormalized user list: every user document joined
// with the orders its reference list points at.
type UserService struct {
	store database.RecordStore
	limit int
}

func NewUserService(store database.RecordStore) *UserService {
	return &UserService{store: store, limit: maxConcurrentUsers}
}

// ListUsersWithOrders returns one entry per stored user, in store order, with
// the raw order-reference list replaced by resolved order documents.
//
// Only the initial user fetch can fail the call. Individual references that
// no longer resolve, or whose fetch errors, become unresolved entries in that
// user's history; they never drop the user and never abort the batch. Users
// are resolved concurrently, bounded by maxConcurrentUsers; no user blocks
// another.
func (s *UserService) ListUsersWithOrders(ctx context.Context) ([]models.UserWithOrders, error) {
	var users []models.User
	if err := s.store.FindAll(ctx, database.CollectionUsers, &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	result := make([]models.UserWithOrders, len(users))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)
	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			result[i] = s.resolveUser(gctx, user)
			return nil
		})
	}
	// Workers never return an error; Wait only joins them.
	_ = g.Wait()

	return result, nil
}

// GetUserByID returns a single user in the same denormalized shape as the
// listing.
func (s *UserService) GetUserByID(ctx context.Context, id string) (models.UserWithOrders, error) {
	var user models.User
	if err := s.store.FindByID(ctx, database.CollectionUsers, id, &user); err != nil {
		return models.UserWithOrders{}, err
	}
	user.ID = id
	return s.resolveUser(ctx, user), nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.store.Delete(ctx, database.CollectionUsers, id)
}

// resolveUser replaces one user's reference list with resolved orders,
// preserving reference order. References are resolved sequentially within a
// user; each produces exactly one entry.
func (s *UserService) resolveUser(ctx context.Context, user models.User) models.UserWithOrders {
	refs := user.Orders.IDs
	resolved := make([]models.ResolvedOrder, 0, len(refs))
	var spent int64

	for _, orderID := range refs {
		var order models.Order
		if err := s.store.FindByID(ctx, database.CollectionOrders, orderID, &order); err != nil {
			if !errors.Is(err, database.ErrNotFound) {
				log.Printf("resolve order %s for user %s: %v", orderID, user.ID, err)
			}
			resolved = append(resolved, models.ResolvedOrder{ID: orderID})
			continue
		}
		order.ID = orderID
		if order.Status == models.OrderStatusPaid {
			spent += order.Amount
		}
		resolved = append(resolved, models.ResolvedOrder{ID: orderID, Order: &order})
	}

	return models.UserWithOrders{
		User:        user,
		Orders:      resolved,
		TotalOrders: len(refs),
		TotalSpent:  spent,
	}
}
