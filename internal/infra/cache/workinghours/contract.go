package workinghours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CalendarService/internal/integrations/businessservice"
)

// BusinessSource источник данных бизнеса (клиент BusinessService)
type BusinessSource interface {
	GetBusiness(ctx context.Context, businessID int64) (*businessservice.Business, error)
}

// RedisClient подмножество команд redis, используемых кэшем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Metrics интерфейс учета попаданий в кэш
type Metrics interface {
	ObserveCache(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
