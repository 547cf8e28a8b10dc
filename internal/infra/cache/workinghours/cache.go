package workinghours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/businessservice"
)

const keyPrefix = "calendar:business:"

// Cache cache-aside поверх BusinessService
// Недоступность redis не приводит к ошибке: запрос уходит напрямую в источник
type Cache struct {
	source  BusinessSource
	client  RedisClient
	ttl     time.Duration
	metrics Metrics
	logger  Logger
}

// NewCache создает кэш бизнесов с рабочими часами
func NewCache(source BusinessSource, client RedisClient, ttl time.Duration, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		source:  source,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// GetBusiness возвращает бизнес из кэша, при промахе - из источника с сохранением в кэш
func (c *Cache) GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error) {
	key := cacheKey(businessID)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var business businessservice.Business
		if err := json.Unmarshal(data, &business); err == nil {
			c.metrics.ObserveCache(true)
			return &business, nil
		}
		c.logger.Warn("WorkingHoursCache: corrupted entry key=%s, refetching", key)
	case errors.Is(err, redis.Nil):
		// промах
	default:
		c.logger.Warn("WorkingHoursCache: redis get failed key=%s: %v", key, err)
	}

	c.metrics.ObserveCache(false)

	business, err := c.source.GetBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(business)
	if err != nil {
		c.logger.Error("WorkingHoursCache: failed to encode business id=%d: %v", businessID, err)
		return business, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("WorkingHoursCache: redis set failed key=%s: %v", key, err)
	}

	return business, nil
}

func cacheKey(businessID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, businessID)
}
