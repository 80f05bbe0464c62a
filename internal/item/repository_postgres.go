package item

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const selectItems = `SELECT item_id, name, description, price FROM items`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Item {
	rows, err := r.db.Query(selectItems + ` ORDER BY item_id`)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *PostgresRepository) GetByID(id int) (Item, error) {
	var it Item
	err := r.db.QueryRow(selectItems+` WHERE item_id = $1`, id).
		Scan(&it.ID, &it.Name, &it.Description, &it.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepository) ListByName(name string) []Item {
	rows, err := r.db.Query(selectItems+` WHERE name = $1 ORDER BY item_id`, name)
	if err != nil {
		return []Item{}
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *PostgresRepository) Create(it Item) (Item, error) {
	err := r.db.QueryRow(
		`INSERT INTO items (name, description, price) VALUES ($1, $2, $3) RETURNING item_id`,
		it.Name, it.Description, it.Price).Scan(&it.ID)
	if err != nil {
		return Item{}, err
	}
	return it, nil
}

func scanItems(rows *sql.Rows) []Item {
	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			continue
		}
		out = append(out, it)
	}
	return out
}
