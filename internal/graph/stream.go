package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// DefaultStream is the Redis stream graphs are published to.
const DefaultStream = "conceptlab:maps"

// MapMessage is the payload an out-of-process visualizer consumes.
type MapMessage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Graph     *Graph    `json:"graph"`
	Timestamp time.Time `json:"timestamp"`
}

// StreamRenderer publishes graphs to a Redis stream for a separate
// visualizer process.
type StreamRenderer struct {
	rdb    *redis.Client
	stream string
	logger *zap.Logger
}

// NewStreamRenderer connects to redisURL and pings it.
func NewStreamRenderer(redisURL, stream string, logger *zap.Logger) (*StreamRenderer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamRenderer{rdb: rdb, stream: stream, logger: logger}, nil
}

func (r *StreamRenderer) Render(ctx context.Context, g *Graph, title string) error {
	msg := &MapMessage{
		ID:        uuid.New().String(),
		Title:     title,
		Graph:     g,
		Timestamp: time.Now(),
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	_, err = r.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("publish to %s: %w", r.stream, err)
	}

	r.logger.Debug("published concept map",
		zap.String("stream", r.stream),
		zap.String("id", msg.ID),
		zap.String("root", g.Root))
	return nil
}

// Subscribe streams maps published after the call. Cancel ctx to stop.
func (r *StreamRenderer) Subscribe(ctx context.Context) <-chan *MapMessage {
	ch := make(chan *MapMessage, 16)

	go func() {
		defer close(ch)
		lastID := "$"

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			results, err := r.rdb.XRead(ctx, &redis.XReadArgs{
				Streams: []string{r.stream, lastID},
				Count:   10,
				Block:   time.Second * 2,
			}).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				if !errors.Is(err, redis.Nil) {
					r.logger.Warn("stream read failed", zap.String("stream", r.stream), zap.Error(err))
					time.Sleep(500 * time.Millisecond)
				}
				continue
			}

			for _, res := range results {
				for _, m := range res.Messages {
					lastID = m.ID
					data, ok := m.Values["data"].(string)
					if !ok {
						continue
					}
					var mm MapMessage
					if json.Unmarshal([]byte(data), &mm) == nil {
						select {
						case ch <- &mm:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
	}()

	return ch
}

// Close shuts down the Redis connection.
func (r *StreamRenderer) Close() error {
	return r.rdb.Close()
}
