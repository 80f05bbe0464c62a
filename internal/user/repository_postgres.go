package user

import (
	"database/sql"
	"strings"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	var u User
	err := r.db.QueryRow(`SELECT user_id, username, password FROM users WHERE user_id = $1`, id).
		Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) GetByUsername(username string) (User, error) {
	var u User
	err := r.db.QueryRow(`SELECT user_id, username, password FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	err := r.db.QueryRow(`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING user_id`,
		u.Username, u.Password).Scan(&u.ID)
	if err != nil {
		// uniqueness is backed by the users_username_key index
		if strings.Contains(err.Error(), "unique") || strings.Contains(err.Error(), "duplicate") {
			return User{}, ErrUsernameTaken
		}
		return User{}, err
	}
	return u, nil
}
