package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/channelry/merchant-api/internal/application/catalog"
	"github.com/channelry/merchant-api/internal/domain/entity"
)

// ProductCacheTTL tiempo de vida de una entrada producto-por-uid.
const ProductCacheTTL = 10 * time.Minute

var _ catalog.ProductCache = (*ProductCache)(nil)

// ProductCache cache Redis de lookups producto-por-uid (JSON con TTL).
// Un miss devuelve (nil, nil); los errores los absorbe el caller cayendo
// a la base de datos.
type ProductCache struct {
	client *redis.Client
}

// NewProductCache construye el cache con un cliente Redis ya conectado.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

func productKey(merchantID, uid string) string {
	return "product:" + merchantID + ":" + uid
}

// Get recupera un producto cacheado. (nil, nil) en miss o entrada corrupta.
func (c *ProductCache) Get(ctx context.Context, merchantID, uid string) (*entity.Product, error) {
	data, err := c.client.Get(ctx, productKey(merchantID, uid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var p entity.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

// Set guarda un producto con TTL.
func (c *ProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productKey(product.MerchantID, product.UID), data, ProductCacheTTL).Err()
}

// Invalidate elimina la entrada de un uid (tras mutar el producto).
func (c *ProductCache) Invalidate(ctx context.Context, merchantID, uid string) error {
	return c.client.Del(ctx, productKey(merchantID, uid)).Err()
}
