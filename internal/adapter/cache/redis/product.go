package cache

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/service"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/redis/go-redis/v9"
)

var _ service.ProductCache = new(redisCache)

type redisCache struct {
	client *redis.Client
	expiry time.Duration
}

// NewRedisCache keeps product snapshots for expirySeconds.
func NewRedisCache(client *redis.Client, expirySeconds int) *redisCache {
	return &redisCache{
		client: client,
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func (c *redisCache) Set(ctx context.Context, product entity.ProductSnapshot) error {
	body, err := json.Marshal(product)
	if err != nil {
		slog.Error("error marshalling product for redis", "error", err)
		return errors.WrapIntoDomainError(err, errors.ErrCache, "marshal product")
	}

	err = c.client.Set(ctx, productKey(product.ID), body, c.expiry).Err()
	if err != nil {
		slog.Error("error updating product in redis", "error", err)
		return errors.WrapIntoDomainError(err, errors.ErrCache, "set product")
	}

	return nil
}

func (c *redisCache) Get(ctx context.Context, id int64) (entity.ProductSnapshot, error) {
	body, err := c.client.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if stdErrors.Is(err, redis.Nil) {
			return entity.ProductSnapshot{}, errors.NewDomainError(errors.ErrNoDataFound, "product %d not cached", id)
		}
		slog.Error("error getting product from redis", "error", err)
		return entity.ProductSnapshot{}, errors.WrapIntoDomainError(err, errors.ErrCache, "get product")
	}

	var product entity.ProductSnapshot
	err = json.Unmarshal(body, &product)
	if err != nil {
		slog.Error("error unmarshalling result from redis", "error", err)
		return entity.ProductSnapshot{}, errors.WrapIntoDomainError(err, errors.ErrCache, "unmarshal product")
	}

	slog.Debug("got product from redis", "product_id", id)

	return product, nil
}
