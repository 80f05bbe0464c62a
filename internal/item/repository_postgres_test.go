package item

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"item_id", "name", "description", "price"}).
		AddRow(1, "Round Widget", "A widget that is round", "2.99")
	mock.ExpectQuery("SELECT item_id, name, description, price FROM items").
		WithArgs(1).WillReturnRows(rows)

	it, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Name != "Round Widget" {
		t.Fatalf("unexpected name %q", it.Name)
	}
	if !it.Price.Equal(decimal.RequireFromString("2.99")) {
		t.Fatalf("unexpected price %s", it.Price)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("SELECT item_id, name, description, price FROM items").
		WithArgs(7).WillReturnRows(sqlmock.NewRows([]string{"item_id", "name", "description", "price"}))

	if _, err := repo.GetByID(7); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"item_id", "name", "description", "price"}).
		AddRow(1, "Round Widget", "A widget that is round", "2.99").
		AddRow(4, "Round Widget", "Limited edition", "3.49")
	mock.ExpectQuery("WHERE name =").WithArgs("Round Widget").WillReturnRows(rows)

	items := repo.ListByName("Round Widget")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].ID != 4 {
		t.Fatalf("unexpected second item %+v", items[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
