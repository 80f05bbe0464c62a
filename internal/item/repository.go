package item

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("item not found")
)

type Repository interface {
	List() []Item
	GetByID(id int) (Item, error)
	// ListByName may return several items; the catalog does not require
	// names to be unique.
	ListByName(name string) []Item
	Create(it Item) (Item, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests
// and seeding local data.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Item
	nextID  int
}

func NewInMemoryRepository(seed []Item) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]Item, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, it := range seed {
		r.storage = append(r.storage, it)
		if it.ID > maxID {
			maxID = it.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List() []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.storage))
	copy(out, r.storage)
	return out
}

func (r *InMemoryRepository) GetByID(id int) (Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.storage {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, ErrNotFound
}

func (r *InMemoryRepository) ListByName(name string) []Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range r.storage {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out
}

func (r *InMemoryRepository) Create(it Item) (Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if it.ID == 0 {
		it.ID = r.nextID
		r.nextID++
	}
	r.storage = append(r.storage, it)
	return it, nil
}
