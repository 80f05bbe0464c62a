package user

import "golang.org/x/crypto/bcrypt"

// Hasher is the injected one-way password function.
type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// BcryptHasher is the production Hasher.
type BcryptHasher struct{}

func (BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptHasher) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

// CartInitializer creates the user's empty cart at registration time. It is
// implemented by the cart service; the indirection keeps this package from
// importing the cart package.
type CartInitializer interface {
	EnsureForUser(userID int) error
}

type Service struct {
	repo   Repository
	hasher Hasher
	carts  CartInitializer
}

func NewService(repo Repository, hasher Hasher, carts CartInitializer) *Service {
	return &Service{repo: repo, hasher: hasher, carts: carts}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetByUsername(username string) (User, error) {
	return s.repo.GetByUsername(username)
}

// Create registers a new user. The confirmation must match before anything
// is persisted; the stored password is always the hash.
func (s *Service) Create(username, password, confirmPassword string) (User, error) {
	if password != confirmPassword {
		return User{}, ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	created, err := s.repo.Create(User{Username: username, Password: hashed})
	if err != nil {
		return User{}, err
	}

	if s.carts != nil {
		if err := s.carts.EnsureForUser(created.ID); err != nil {
			return User{}, err
		}
	}

	return created, nil
}

func (s *Service) Authenticate(username, password string) (User, error) {
	u, err := s.repo.GetByUsername(username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if s.hasher.Compare(u.Password, password) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}
