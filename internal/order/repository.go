package order

import (
	"sync"
)

// Repository persists submitted orders. Orders are write-once; there is no
// update path.
type Repository interface {
	Create(ord UserOrder) (UserOrder, error)
	// ListByUserID returns the user's orders in the store's natural
	// retrieval order. An empty slice is a valid result.
	ListByUserID(userID int) ([]UserOrder, error)
}

type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []UserOrder
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) Create(ord UserOrder) (UserOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ord.ID == 0 {
		ord.ID = r.nextID
		r.nextID++
	}
	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) ListByUserID(userID int) ([]UserOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]UserOrder, 0)
	for _, ord := range r.orders {
		if ord.UserID == userID {
			out = append(out, ord)
		}
	}
	return out, nil
}
