package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/thanadol-s/ecommerce-backend/internal/cart"
	"github.com/thanadol-s/ecommerce-backend/internal/item"
	"github.com/thanadol-s/ecommerce-backend/internal/user"
)

// UserDirectory resolves usernames to users; implemented by user.Service.
type UserDirectory interface {
	GetByUsername(username string) (user.User, error)
}

// CartReader loads the current cart for a user; implemented by cart.Service.
type CartReader interface {
	GetByUserID(userID int) (cart.Cart, error)
}

// Service turns carts into immutable orders and serves order history.
type Service struct {
	repo  Repository
	users UserDirectory
	carts CartReader
}

func NewService(repo Repository, users UserDirectory, carts CartReader) *Service {
	return &Service{repo: repo, users: users, carts: carts}
}

// Submit snapshots the user's current cart into a new order. The cart is
// left as-is afterwards; clearing it is the client's decision, matching the
// system this replaces.
func (s *Service) Submit(username string) (UserOrder, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return UserOrder{}, err
	}

	c, err := s.carts.GetByUserID(u.ID)
	if err != nil {
		return UserOrder{}, err
	}

	ord := UserOrder{
		OrderNumber: uuid.NewString(),
		UserID:      u.ID,
		Items:       append([]item.Item(nil), c.Items...),
		Total:       c.Total,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	return s.repo.Create(ord)
}

// HistoryForUser returns all of the user's orders; an empty history is not
// an error.
func (s *Service) HistoryForUser(username string) ([]UserOrder, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUserID(u.ID)
}
