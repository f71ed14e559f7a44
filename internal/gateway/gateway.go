package gateway

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Gateway owns the chat adapters. Every inbound message, whatever the
// platform, goes to one handler; replies are addressed by platform name.
type Gateway struct {
	adapters map[string]GatewayAdapter
	handler  MessageHandler
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewGateway(logger *zap.Logger) *Gateway {
	return &Gateway{
		adapters: make(map[string]GatewayAdapter),
		logger:   logger,
	}
}

// SetHandler may be called before or after adapters are registered.
func (g *Gateway) SetHandler(h MessageHandler) {
	g.mu.Lock()
	g.handler = h
	g.mu.Unlock()
}

// Register replaces any adapter already bound to the same platform.
func (g *Gateway) Register(adapter GatewayAdapter) {
	platform := adapter.Platform()
	adapter.OnMessage(g.dispatch)

	g.mu.Lock()
	g.adapters[platform] = adapter
	g.mu.Unlock()
	g.logger.Info("chat adapter registered", zap.String("platform", platform))
}

func (g *Gateway) dispatch(msg *InboundMessage) {
	g.mu.RLock()
	h := g.handler
	g.mu.RUnlock()
	if h != nil {
		h(msg)
	}
}

// ConnectAll tries every adapter, in platform order, and reports all
// failures together. One broken platform does not keep the others offline.
func (g *Gateway) ConnectAll(ctx context.Context) error {
	var errs []error
	for _, platform := range g.Adapters() {
		g.mu.RLock()
		adapter := g.adapters[platform]
		g.mu.RUnlock()

		if err := adapter.Connect(ctx); err != nil {
			g.logger.Error("chat adapter offline", zap.String("platform", platform), zap.Error(err))
			errs = append(errs, fmt.Errorf("connect %s: %w", platform, err))
			continue
		}
		g.logger.Info("chat adapter online", zap.String("platform", platform))
	}
	return errors.Join(errs...)
}

// Send routes msg to the adapter named by msg.Platform.
func (g *Gateway) Send(ctx context.Context, msg *OutboundMessage) error {
	g.mu.RLock()
	adapter, ok := g.adapters[msg.Platform]
	g.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no adapter for platform: %s", msg.Platform)
	}
	return adapter.Send(ctx, msg)
}

// Close closes every adapter, logging failures.
func (g *Gateway) Close() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for platform, adapter := range g.adapters {
		if err := adapter.Close(); err != nil {
			g.logger.Error("chat adapter close failed", zap.String("platform", platform), zap.Error(err))
		}
	}
	return nil
}

// Adapters returns the registered platform names, sorted.
func (g *Gateway) Adapters() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.adapters))
	for p := range g.adapters {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

// StatusAll reports every adapter's connection state, sorted by platform.
func (g *Gateway) StatusAll() []AdapterStatus {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]AdapterStatus, 0, len(g.adapters))
	for _, a := range g.adapters {
		out = append(out, a.Status())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Platform < out[j].Platform })
	return out
}
