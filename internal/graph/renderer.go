package graph

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Renderer receives a finished graph. Implementations own layout, drawing
// and any display or storage lifecycle.
type Renderer interface {
	Render(ctx context.Context, g *Graph, title string) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, g *Graph, title string) error

func (f RendererFunc) Render(ctx context.Context, g *Graph, title string) error {
	return f(ctx, g, title)
}

// NopRenderer discards every graph.
type NopRenderer struct{}

func (NopRenderer) Render(context.Context, *Graph, string) error { return nil }

// MultiRenderer fans a graph out to several renderers. Every renderer is
// invoked even if an earlier one fails.
type MultiRenderer struct {
	renderers []Renderer
}

// NewMultiRenderer skips nil entries.
func NewMultiRenderer(rs ...Renderer) *MultiRenderer {
	m := &MultiRenderer{}
	for _, r := range rs {
		if r != nil {
			m.renderers = append(m.renderers, r)
		}
	}
	return m
}

// Len reports how many renderers are attached.
func (m *MultiRenderer) Len() int { return len(m.renderers) }

func (m *MultiRenderer) Render(ctx context.Context, g *Graph, title string) error {
	var errs []error
	for _, r := range m.renderers {
		if err := r.Render(ctx, g, title); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("render failed on %d renderer(s): %w", len(errs), errors.Join(errs...))
	}
	return nil
}

// LogRenderer writes the graph as a structured log line.
type LogRenderer struct {
	logger *zap.Logger
}

func NewLogRenderer(logger *zap.Logger) *LogRenderer {
	return &LogRenderer{logger: logger}
}

func (r *LogRenderer) Render(_ context.Context, g *Graph, title string) error {
	r.logger.Info("acquisition graph",
		zap.String("title", title),
		zap.String("root", g.Root),
		zap.Strings("leaves", g.Leaves()),
		zap.Int("nodes", len(g.Nodes)),
		zap.Int("edges", len(g.Edges)))
	return nil
}

// Recorder keeps every rendered graph in memory. Used by the chat
// surfaces to show the last map, and by tests.
type Recorder struct {
	mu     sync.Mutex
	graphs []*Graph
	titles []string
}

func (r *Recorder) Render(_ context.Context, g *Graph, title string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs = append(r.graphs, g)
	r.titles = append(r.titles, title)
	return nil
}

// Count returns the number of graphs rendered so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.graphs)
}

// Last returns the most recent graph and title, or nil.
func (r *Recorder) Last() (*Graph, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.graphs) == 0 {
		return nil, ""
	}
	i := len(r.graphs) - 1
	return r.graphs[i], r.titles[i]
}

// Text renders g as an indented tree, for chat platforms without images.
func Text(g *Graph, title string) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteByte('\n')
	}
	b.WriteString(g.Root)
	for i, leaf := range g.Leaves() {
		branch := "├── "
		if i == len(g.Edges)-1 {
			branch = "└── "
		}
		b.WriteString("\n" + branch + leaf)
	}
	return b.String()
}
