package cart

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

// item_ids is a jsonb array of catalog ids, one entry per unit, preserving
// order and duplicates. Item details are re-resolved on every read so the
// cart never carries stale prices.
const resolveItemsQuery = `
        SELECT item_id, name, description, price
        FROM items
        WHERE item_id = ANY($1::int[])
    `

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUserID(userID int) (Cart, error) {
	var c Cart
	var rawIDs []byte
	err := r.db.QueryRow(`SELECT cart_id, user_id, item_ids, total FROM carts WHERE user_id = $1`, userID).
		Scan(&c.ID, &c.UserID, &rawIDs, &c.Total)
	if err != nil {
		if err == sql.ErrNoRows {
			return Cart{}, ErrNotFound
		}
		return Cart{}, err
	}

	var ids []int
	if len(rawIDs) > 0 {
		if err := json.Unmarshal(rawIDs, &ids); err != nil {
			return Cart{}, err
		}
	}

	items, err := r.resolveItems(ids)
	if err != nil {
		return Cart{}, err
	}
	c.Items = items
	return c, nil
}

func (r *PostgresRepository) Save(c Cart) (Cart, error) {
	ids := make([]int, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.ID)
	}
	rawIDs, err := json.Marshal(ids)
	if err != nil {
		return Cart{}, err
	}

	err = r.db.QueryRow(`INSERT INTO carts (user_id, item_ids, total) VALUES ($1, $2, $3)
        ON CONFLICT (user_id) DO UPDATE SET item_ids = EXCLUDED.item_ids, total = EXCLUDED.total
        RETURNING cart_id`,
		c.UserID, rawIDs, c.Total).Scan(&c.ID)
	if err != nil {
		return Cart{}, err
	}
	return c, nil
}

// resolveItems rebuilds the unit sequence from catalog rows, keeping the
// stored order and duplicate entries.
func (r *PostgresRepository) resolveItems(ids []int) ([]item.Item, error) {
	out := make([]item.Item, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	unique := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	rows, err := r.db.Query(resolveItemsQuery, pq.Array(unique))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int]item.Item, len(unique))
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}
