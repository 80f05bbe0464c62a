package cart

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/thanadol-s/ecommerce-backend/internal/item"
)

func TestPostgresGetByUserID_ResolvesDuplicateUnits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	cartRows := sqlmock.NewRows([]string{"cart_id", "user_id", "item_ids", "total"}).
		AddRow(5, 1, []byte(`[1,1,2]`), "7.97")
	mock.ExpectQuery("SELECT cart_id, user_id, item_ids, total FROM carts").
		WithArgs(1).WillReturnRows(cartRows)

	itemRows := sqlmock.NewRows([]string{"item_id", "name", "description", "price"}).
		AddRow(1, "Round Widget", "A widget that is round", "2.99").
		AddRow(2, "Square Widget", "A widget that is square", "1.99")
	mock.ExpectQuery("FROM items").WillReturnRows(itemRows)

	c, err := repo.GetByUserID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != 5 || c.UserID != 1 {
		t.Fatalf("unexpected cart identity: %+v", c)
	}
	if len(c.Items) != 3 {
		t.Fatalf("expected 3 units, got %d", len(c.Items))
	}
	if c.Items[0].ID != 1 || c.Items[1].ID != 1 || c.Items[2].ID != 2 {
		t.Fatalf("unit order not preserved: %+v", c.Items)
	}
	if !c.Total.Equal(decimal.RequireFromString("7.97")) {
		t.Fatalf("unexpected total %s", c.Total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByUserID_MissingCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT cart_id, user_id, item_ids, total FROM carts").
		WithArgs(42).WillReturnRows(sqlmock.NewRows([]string{"cart_id", "user_id", "item_ids", "total"}))

	if _, err := repo.GetByUserID(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresSave_UpsertsUnitSequence(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO carts").
		WithArgs(1, []byte(`[1,1]`), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"cart_id"}).AddRow(9))

	widget := item.Item{ID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
	c := Cart{UserID: 1}
	c.AddItem(widget, 2)

	saved, err := repo.Save(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != 9 {
		t.Fatalf("expected cart id 9, got %d", saved.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
