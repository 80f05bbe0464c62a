package user

import (
	"errors"
	"testing"
)

// stubHasher makes hashing observable without bcrypt's cost.
type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (stubHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestServiceCreate_UsesInjectedHasher(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo, stubHasher{}, nil)

	created, err := s.Create("test", "testPassword", "testPassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Password != "hashed:testPassword" {
		t.Fatalf("expected the injected hasher's output, got %q", created.Password)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned id")
	}
}

func TestServiceCreate_MismatchDoesNotTouchTheStore(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo, stubHasher{}, nil)

	if _, err := s.Create("test", "testPassword", "Password"); err != ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if _, err := repo.GetByUsername("test"); err != ErrNotFound {
		t.Fatalf("user persisted despite mismatch: %v", err)
	}
}

func TestServiceAuthenticate(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	s := NewService(repo, stubHasher{}, nil)

	if _, err := s.Create("test", "pw", "pw"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Authenticate("test", "pw"); err != nil {
		t.Fatalf("expected successful login, got %v", err)
	}
	if _, err := s.Authenticate("test", "nope"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Authenticate("ghost", "pw"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
