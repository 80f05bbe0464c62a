package item

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	itemKeyPrefix = "item:"
	itemKeyTTL    = 5 * time.Minute
)

// Cache is a redis-backed read-through cache for single-item lookups. The
// catalog is read-only at runtime, so entries only ever expire by TTL.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, id int) (Item, bool) {
	raw, err := c.client.Get(ctx, itemKeyPrefix+strconv.Itoa(id)).Bytes()
	if err != nil {
		return Item{}, false
	}

	var it Item
	if err := json.Unmarshal(raw, &it); err != nil {
		return Item{}, false
	}
	return it, true
}

func (c *Cache) Set(ctx context.Context, it Item) {
	raw, err := json.Marshal(it)
	if err != nil {
		return
	}
	c.client.Set(ctx, itemKeyPrefix+strconv.Itoa(it.ID), raw, itemKeyTTL)
}
