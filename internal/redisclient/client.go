package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	client redis.UniversalClient
}

// NewClient creates a new traced Redis client. Both single-node and
// cluster clients satisfy redis.UniversalClient.
func NewClient(client redis.UniversalClient) *Client {
	return &Client{client: client}
}

// startSpan opens a span for a single Redis command
func (c *Client) startSpan(ctx context.Context, operation, key, dataType string) (context.Context, trace.Span, time.Time) {
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+operation,
		trace.WithAttributes(
			attribute.String("redis.key", key),
			attribute.String("redis.operation", operation),
			attribute.String("redis.client", "app-cnh"),
			attribute.String("redis.type", dataType),
		),
	)
	return ctx, span, time.Now()
}

// finishSpan records timing and the command outcome, then ends the span
func finishSpan(span trace.Span, start time.Time, err error) {
	duration := time.Since(start)
	span.SetAttributes(
		attribute.Int64("redis.duration_ms", duration.Milliseconds()),
		attribute.String("redis.duration", duration.String()),
	)
	if err != nil && err != redis.Nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("redis.error", err.Error()))
	} else {
		span.SetStatus(codes.Ok, "success")
	}
	span.End()
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, span, start := c.startSpan(ctx, "ping", "", "connection")
	cmd := c.client.Ping(ctx)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// HSet wraps Redis HSet with tracing
func (c *Client) HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	ctx, span, start := c.startSpan(ctx, "hset", key, "hash")
	cmd := c.client.HSet(ctx, key, values...)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// HGetAll wraps Redis HGetAll with tracing
func (c *Client) HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd {
	ctx, span, start := c.startSpan(ctx, "hgetall", key, "hash")
	cmd := c.client.HGetAll(ctx, key)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, span, start := c.startSpan(ctx, "del", key, "generic")
	span.SetAttributes(attribute.Int("redis.keys_count", len(keys)))
	cmd := c.client.Del(ctx, keys...)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// Exists wraps Redis Exists with tracing
func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	key := ""
	if len(keys) > 0 {
		key = keys[0]
	}
	ctx, span, start := c.startSpan(ctx, "exists", key, "generic")
	cmd := c.client.Exists(ctx, keys...)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// SAdd wraps Redis SAdd with tracing
func (c *Client) SAdd(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	ctx, span, start := c.startSpan(ctx, "sadd", key, "set")
	cmd := c.client.SAdd(ctx, key, members...)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// SRem wraps Redis SRem with tracing
func (c *Client) SRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd {
	ctx, span, start := c.startSpan(ctx, "srem", key, "set")
	cmd := c.client.SRem(ctx, key, members...)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// SMembers wraps Redis SMembers with tracing
func (c *Client) SMembers(ctx context.Context, key string) *redis.StringSliceCmd {
	ctx, span, start := c.startSpan(ctx, "smembers", key, "set")
	cmd := c.client.SMembers(ctx, key)
	finishSpan(span, start, cmd.Err())
	return cmd
}

// Pipelined runs fn in a pipeline under a single span
func (c *Client) Pipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	ctx, span, start := c.startSpan(ctx, "pipeline", "", "pipeline")
	cmds, err := c.client.Pipelined(ctx, fn)
	span.SetAttributes(attribute.Int("redis.commands_count", len(cmds)))
	finishSpan(span, start, err)
	return cmds, err
}

// TxPipelined runs fn in a MULTI/EXEC transaction under a single span
func (c *Client) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	ctx, span, start := c.startSpan(ctx, "tx_pipeline", "", "pipeline")
	cmds, err := c.client.TxPipelined(ctx, fn)
	span.SetAttributes(attribute.Int("redis.commands_count", len(cmds)))
	finishSpan(span, start, err)
	return cmds, err
}

// Close closes the underlying client
func (c *Client) Close() error {
	return c.client.Close()
}
