package main

import (
	"database/sql"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/thanadol-s/ecommerce-backend/internal/cart"
	"github.com/thanadol-s/ecommerce-backend/internal/config"
	"github.com/thanadol-s/ecommerce-backend/internal/database"
	"github.com/thanadol-s/ecommerce-backend/internal/item"
	"github.com/thanadol-s/ecommerce-backend/internal/order"
	"github.com/thanadol-s/ecommerce-backend/internal/user"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	if err := ensureSchema(db); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	// UnescapePath so item names with spaces resolve in route params
	app := fiber.New(fiber.Config{UnescapePath: true})
	setupCORS(app)

	// optional redis cache for single-item catalog lookups
	var itemCache *item.Cache
	if cfg.RedisAddr != "" {
		itemCache = item.NewCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Info().Str("addr", cfg.RedisAddr).Msg("item cache enabled")
	}

	itemRepo := item.NewPostgresRepository(db)
	itemService := item.NewService(itemRepo, itemCache)
	itemHandler := item.NewHandler(itemService)
	seedItems(itemRepo, db)

	userRepo := user.NewPostgresRepository(db)

	cartRepo := cart.NewPostgresRepository(db)
	cartService := cart.NewService(cartRepo, userRepo, itemService)
	cartHandler := cart.NewHandler(cartService)

	// the user service hands freshly registered users an empty cart
	userService := user.NewService(userRepo, user.BcryptHasher{}, cartService)
	userHandler := user.NewHandler(userService)

	orderService := order.NewService(order.NewPostgresRepository(db), userService, cartService)
	orderHandler := order.NewHandler(orderService)

	userHandler.RegisterPublicRoutes(app)
	itemHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))
	userHandler.RegisterProtectedRoutes(app)

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func ensureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
            user_id SERIAL PRIMARY KEY,
            username TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS items (
            item_id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price NUMERIC NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            cart_id SERIAL PRIMARY KEY,
            user_id INT NOT NULL UNIQUE REFERENCES users(user_id),
            item_ids JSONB NOT NULL DEFAULT '[]',
            total NUMERIC NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            order_id SERIAL PRIMARY KEY,
            order_number TEXT NOT NULL,
            user_id INT NOT NULL REFERENCES users(user_id),
            item_ids JSONB NOT NULL DEFAULT '[]',
            total NUMERIC NOT NULL DEFAULT 0,
            created_at TEXT
        )`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedItems puts a starter catalog in place when the items table is empty.
func seedItems(repo item.Repository, db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil || count > 0 {
		return
	}

	seed := []item.Item{
		{Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")},
		{Name: "Square Widget", Description: "A widget that is square", Price: decimal.RequireFromString("1.99")},
	}
	for _, it := range seed {
		if _, err := repo.Create(it); err != nil {
			log.Warn().Err(err).Str("name", it.Name).Msg("item seed failed")
		}
	}
}
