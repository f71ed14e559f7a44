// Package bootstrap wires configuration into loggers and renderers for the
// binaries under cmd/.
package bootstrap

import (
	"context"

	"github.com/nidhogg/concept-lab/internal/config"
	"github.com/nidhogg/concept-lab/internal/graph"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a development logger at level ("debug", "info", ...).
// Unknown levels fall back to info.
func NewLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Renderers builds every renderer enabled in cfg. Backends that cannot be
// reached are skipped with a warning. The returned func releases them.
func Renderers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*graph.MultiRenderer, func()) {
	var (
		rs      []graph.Renderer
		closers []func()
	)

	if cfg.Render.Log {
		rs = append(rs, graph.NewLogRenderer(logger))
	}

	if cfg.Render.DOTDir != "" {
		r, err := graph.NewDOTRenderer(cfg.Render.DOTDir, logger)
		if err != nil {
			logger.Warn("DOT output unavailable", zap.Error(err))
		} else {
			rs = append(rs, r)
			logger.Info("writing concept maps", zap.String("dir", cfg.Render.DOTDir))
		}
	}

	if n := cfg.Database.Neo4j; n.URI != "" {
		r, err := graph.NewNeo4jRenderer(n.URI, n.User, n.Password, logger)
		if err == nil {
			err = r.Ping(ctx)
			if err != nil {
				r.Close(ctx)
			}
		}
		if err != nil {
			logger.Warn("Neo4j unavailable, concept maps will not be stored", zap.Error(err))
		} else {
			rs = append(rs, r)
			closers = append(closers, func() { r.Close(context.Background()) })
			logger.Info("storing concept maps in Neo4j", zap.String("uri", n.URI))
		}
	}

	if rc := cfg.Database.Redis; rc.URL != "" {
		r, err := graph.NewStreamRenderer(rc.URL, rc.Stream, logger)
		if err != nil {
			logger.Warn("Redis unavailable, concept maps will not be published", zap.Error(err))
		} else {
			rs = append(rs, r)
			closers = append(closers, func() { r.Close() })
			logger.Info("publishing concept maps to Redis")
		}
	}

	return graph.NewMultiRenderer(rs...), func() {
		for _, c := range closers {
			c()
		}
	}
}
