package order

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ord UserOrder) (UserOrder, error) {
	ids := make([]int, 0, len(ord.Items))
	for _, it := range ord.Items {
		ids = append(ids, it.ID)
	}
	rawIDs, err := json.Marshal(ids)
	if err != nil {
		return UserOrder{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders (order_number, user_id, item_ids, total, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING order_id`,
		ord.OrderNumber, ord.UserID, rawIDs, ord.Total, ord.CreatedAt).Scan(&ord.ID)
	if err != nil {
		return UserOrder{}, err
	}
	return ord, nil
}

func (r *PostgresRepository) ListByUserID(userID int) ([]UserOrder, error) {
	rows, err := r.db.Query(`SELECT order_id, order_number, user_id, item_ids, total, created_at
        FROM orders WHERE user_id = $1 ORDER BY order_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]UserOrder, 0)
	idSet := make(map[int]bool)
	var allIDs [][]int

	for rows.Next() {
		var ord UserOrder
		var rawIDs []byte
		if err := rows.Scan(&ord.ID, &ord.OrderNumber, &ord.UserID, &rawIDs, &ord.Total, &ord.CreatedAt); err != nil {
			return nil, err
		}
		var ids []int
		if len(rawIDs) > 0 {
			if err := json.Unmarshal(rawIDs, &ids); err != nil {
				return nil, err
			}
		}
		for _, id := range ids {
			idSet[id] = true
		}
		allIDs = append(allIDs, ids)
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	byID, err := r.itemsByID(idSet)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		items := make([]item.Item, 0, len(allIDs[i]))
		for _, id := range allIDs[i] {
			if it, ok := byID[id]; ok {
				items = append(items, it)
			}
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *PostgresRepository) itemsByID(idSet map[int]bool) (map[int]item.Item, error) {
	byID := make(map[int]item.Item, len(idSet))
	if len(idSet) == 0 {
		return byID, nil
	}

	ids := make([]int, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	rows, err := r.db.Query(`SELECT item_id, name, description, price FROM items WHERE item_id = ANY($1::int[])`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		byID[it.ID] = it
	}
	return byID, rows.Err()
}
