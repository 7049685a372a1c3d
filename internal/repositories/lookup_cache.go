package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-diet-tracker/internal/logger"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
)

// ErrLookupNotCached is returned on a cache miss.
var ErrLookupNotCached = errors.New("lookup payload not found in cache")

// ProductLookupCacheRepository caches raw food API payloads in Redis,
// including "not found" answers.
type ProductLookupCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

func NewProductLookupCacheRepository(client *redis.Client, expiration time.Duration) *ProductLookupCacheRepository {
	return &ProductLookupCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func lookupKey(barcode int64) string {
	return fmt.Sprintf("product_lookup:%d", barcode)
}

// GetLookup returns the cached payload for barcode.
func (r *ProductLookupCacheRepository) GetLookup(ctx context.Context, barcode int64) (*models.LookupPayload, error) {
	key := lookupKey(barcode)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "hit", false, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %d", ErrLookupNotCached, barcode)
		}
		return nil, err
	}

	var payload models.LookupPayload
	if err := json.Unmarshal(val, &payload); err != nil {
		logger.FromContext(ctx).Infow("cache get", "key", key, "hit", true, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Infow("cache get", "key", key, "hit", true, "status", payload.Status)

	return &payload, nil
}

// SetLookup caches the payload for barcode with the configured expiration.
func (r *ProductLookupCacheRepository) SetLookup(ctx context.Context, barcode int64, payload *models.LookupPayload) error {
	key := lookupKey(barcode)

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.FromContext(ctx).Infow("cache set",
		"key", key,
		"size", len(data),
		"error", err,
	)

	return err
}
