package item

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func makeItemApp(seed []Item) *fiber.App {
	handler := NewHandler(NewService(NewInMemoryRepository(seed), nil))
	// UnescapePath so item names with spaces resolve ("Round%20Widget")
	app := fiber.New(fiber.Config{UnescapePath: true})
	handler.RegisterPublicRoutes(app)
	return app
}

func widgetSeed() []Item {
	return []Item{
		{ID: 1, Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")},
		{ID: 2, Name: "Square Widget", Description: "A widget that is square", Price: decimal.RequireFromString("1.99")},
	}
}

func TestGetItems(t *testing.T) {
	app := makeItemApp(widgetSeed())

	req := httptest.NewRequest("GET", "/api/item", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var items []Item
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Round Widget" || items[0].Description != "A widget that is round" {
		t.Fatalf("unexpected first item %+v", items[0])
	}
}

func TestGetItemByID(t *testing.T) {
	app := makeItemApp(widgetSeed())

	req := httptest.NewRequest("GET", "/api/item/1", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var it Item
	json.NewDecoder(res.Body).Decode(&it)
	if it.ID != 1 || !it.Price.Equal(decimal.RequireFromString("2.99")) {
		t.Fatalf("unexpected item %+v", it)
	}

	req2 := httptest.NewRequest("GET", "/api/item/99", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res2.StatusCode)
	}
}

func TestGetItemsByName(t *testing.T) {
	app := makeItemApp(widgetSeed())

	req := httptest.NewRequest("GET", "/api/item/name/Round%20Widget", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var items []Item
	json.NewDecoder(res.Body).Decode(&items)
	if len(items) != 1 || items[0].Name != "Round Widget" {
		t.Fatalf("unexpected items %+v", items)
	}

	// a name with no matches is an empty list, not an error
	req2 := httptest.NewRequest("GET", "/api/item/name/Hexagonal%20Widget", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for unknown name, got %d", res2.StatusCode)
	}
	var empty []Item
	json.NewDecoder(res2.Body).Decode(&empty)
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %+v", empty)
	}
}
