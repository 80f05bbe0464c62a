package cart

import (
	"sync"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
	"github.com/thanadol-s/ecommerce-backend/internal/user"
)

// UserDirectory resolves usernames to users; implemented by user.Service.
type UserDirectory interface {
	GetByUsername(username string) (user.User, error)
}

// ItemDirectory resolves catalog items by id; implemented by item.Service.
type ItemDirectory interface {
	GetByID(id int) (item.Item, error)
}

// Service is the cart engine: it resolves the user and item, mutates the
// cart unit sequence, recomputes the total and writes the cart back.
type Service struct {
	repo  Repository
	users UserDirectory
	items ItemDirectory

	// per-user locks serialize concurrent read-modify-write cycles on the
	// same cart
	locks sync.Map
}

func NewService(repo Repository, users UserDirectory, items ItemDirectory) *Service {
	return &Service{repo: repo, users: users, items: items}
}

// Add appends qty units of the item to the user's cart. qty <= 0 leaves the
// cart untouched and returns its current state.
func (s *Service) Add(username string, itemID int, qty int) (Cart, error) {
	return s.modify(username, itemID, qty, func(c *Cart, it item.Item) {
		c.AddItem(it, qty)
	})
}

// Remove deletes up to qty units of the item from the user's cart.
func (s *Service) Remove(username string, itemID int, qty int) (Cart, error) {
	return s.modify(username, itemID, qty, func(c *Cart, it item.Item) {
		c.RemoveItem(it.ID, qty)
	})
}

func (s *Service) modify(username string, itemID int, qty int, mutate func(*Cart, item.Item)) (Cart, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}

	it, err := s.items.GetByID(itemID)
	if err != nil {
		return Cart{}, err
	}

	lock := s.userLock(u.ID)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.cartForUser(u.ID)
	if err != nil {
		return Cart{}, err
	}

	if qty <= 0 {
		return c, nil
	}

	mutate(&c, it)
	return s.repo.Save(c)
}

// GetByUser returns the user's cart, empty if none has been saved yet.
func (s *Service) GetByUser(username string) (Cart, error) {
	u, err := s.users.GetByUsername(username)
	if err != nil {
		return Cart{}, err
	}
	return s.cartForUser(u.ID)
}

// GetByUserID returns the cart for an already-resolved user id.
func (s *Service) GetByUserID(userID int) (Cart, error) {
	return s.cartForUser(userID)
}

// EnsureForUser creates an empty cart for a freshly registered user. It
// satisfies user.CartInitializer.
func (s *Service) EnsureForUser(userID int) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.repo.GetByUserID(userID); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	empty := Cart{UserID: userID}
	empty.recomputeTotal()
	_, err := s.repo.Save(empty)
	return err
}

// cartForUser treats a missing cart as empty so users seeded outside the
// registration path still get a working cart.
func (s *Service) cartForUser(userID int) (Cart, error) {
	c, err := s.repo.GetByUserID(userID)
	if err == ErrNotFound {
		c = Cart{UserID: userID}
		c.recomputeTotal()
		return c, nil
	}
	return c, err
}

func (s *Service) userLock(userID int) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
