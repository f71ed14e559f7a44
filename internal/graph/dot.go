package graph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emicklei/dot"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DOTRenderer writes each graph as a Graphviz file into dir. Layout and
// drawing are left to `dot`/`neato` or any DOT viewer.
type DOTRenderer struct {
	dir    string
	logger *zap.Logger
}

// NewDOTRenderer creates dir if needed.
func NewDOTRenderer(dir string, logger *zap.Logger) (*DOTRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dot dir %s: %w", dir, err)
	}
	return &DOTRenderer{dir: dir, logger: logger}, nil
}

func (r *DOTRenderer) Render(_ context.Context, g *Graph, title string) error {
	name := fmt.Sprintf("%s-%s-%s.dot", slug(string(g.Concept)), slug(string(g.Category)), uuid.New().String()[:8])
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, []byte(DOT(g, title)), 0o644); err != nil {
		return fmt.Errorf("write dot %s: %w", path, err)
	}
	r.logger.Debug("wrote concept map", zap.String("path", path))
	return nil
}

// DOT encodes g in Graphviz syntax. Node order is preserved.
func DOT(g *Graph, title string) string {
	d := dot.NewGraph(dot.Directed)
	d.Attr("label", title)
	d.Attr("labelloc", "t")

	nodes := make(map[string]dot.Node, len(g.Nodes))
	for _, n := range g.Nodes {
		// Graphviz widths are in inches; sizes are relative areas.
		nodes[n.Label] = d.Node(n.Label).Attr("width", fmt.Sprintf("%.1f", float64(n.Size)/500))
	}
	for _, e := range g.Edges {
		d.Edge(nodes[e.From], nodes[e.To])
	}
	return d.String()
}

func slug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	if s == "" {
		return "unknown"
	}
	return s
}
