package cart

import (
	"errors"
	"sync"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

var (
	ErrNotFound = errors.New("cart not found")
)

// Repository persists carts keyed by their owning user. Save is an upsert:
// the engine loads, mutates and writes back the whole cart.
type Repository interface {
	GetByUserID(userID int) (Cart, error)
	Save(c Cart) (Cart, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	carts  map[int]Cart // keyed by user id
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts:  make(map[int]Cart),
		nextID: 1,
	}
}

func (r *InMemoryRepository) GetByUserID(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return Cart{}, ErrNotFound
	}

	items := make([]item.Item, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.carts[c.UserID]; ok {
		c.ID = existing.ID
	} else if c.ID == 0 {
		c.ID = r.nextID
		r.nextID++
	}
	r.carts[c.UserID] = c
	return c, nil
}
