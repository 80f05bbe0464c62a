package item

import (
	"context"
	"time"
)

// Service orchestrates catalog reads. The cache is optional; a nil cache
// means every lookup goes straight to the repository.
type Service struct {
	repo  Repository
	cache *Cache
}

func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) List() []Item {
	return s.repo.List()
}

func (s *Service) GetByID(id int) (Item, error) {
	if s.cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		if it, ok := s.cache.Get(ctx, id); ok {
			return it, nil
		}
		it, err := s.repo.GetByID(id)
		if err != nil {
			return Item{}, err
		}
		s.cache.Set(ctx, it)
		return it, nil
	}

	return s.repo.GetByID(id)
}

func (s *Service) ListByName(name string) []Item {
	return s.repo.ListByName(name)
}

func (s *Service) Create(it Item) (Item, error) {
	return s.repo.Create(it)
}
