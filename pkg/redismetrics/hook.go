package redismetrics

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/ASTB-BookingService/pkg/metrics"
)

// Hook собирает prometheus-метрики по каждой команде redis-клиента.
// Вешается на клиент через client.AddHook.
type Hook struct {
	metrics *metrics.Metrics
}

type startTimeKey struct{}

// NewHook creates a redis hook reporting into the given metrics collector
func NewHook(m *metrics.Metrics) *Hook {
	return &Hook{metrics: m}
}

// BeforeProcess stores the command start time in the context
func (h *Hook) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	return context.WithValue(ctx, startTimeKey{}, time.Now()), nil
}

// AfterProcess records duration and outcome of a single command
func (h *Hook) AfterProcess(ctx context.Context, cmd redis.Cmder) error {
	h.observe(ctx, cmd.Name(), cmd.Err())
	return nil
}

// BeforeProcessPipeline stores the pipeline start time in the context
func (h *Hook) BeforeProcessPipeline(ctx context.Context, cmds []redis.Cmder) (context.Context, error) {
	return context.WithValue(ctx, startTimeKey{}, time.Now()), nil
}

// AfterProcessPipeline records duration and outcome of a pipeline as one unit
func (h *Hook) AfterProcessPipeline(ctx context.Context, cmds []redis.Cmder) error {
	var firstErr error
	for _, cmd := range cmds {
		if err := cmd.Err(); err != nil {
			firstErr = err
			break
		}
	}
	h.observe(ctx, "pipeline", firstErr)
	return nil
}

func (h *Hook) observe(ctx context.Context, command string, err error) {
	if start, ok := ctx.Value(startTimeKey{}).(time.Time); ok {
		h.metrics.StoreOperationDuration.WithLabelValues(command).Observe(time.Since(start).Seconds())
	}

	// redis.Nil - это отсутствие ключа, а не сбой
	status := "ok"
	if err != nil && !errors.Is(err, redis.Nil) {
		status = "error"
	}
	h.metrics.StoreOperationsTotal.WithLabelValues(command, status).Inc()
}
