//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nidhogg/concept-lab/internal/bootstrap"
	"github.com/nidhogg/concept-lab/internal/config"
	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"github.com/nidhogg/concept-lab/internal/service"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	testLogger, _ = zap.NewDevelopment()

	neo4jURI, neo4jCleanup, err := startNeo4j(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "neo4j: %v\n", err)
		os.Exit(1)
	}
	testNeo4jURI = neo4jURI

	redisURL, redisCleanup, err := startRedis(ctx)
	if err != nil {
		neo4jCleanup()
		fmt.Fprintf(os.Stderr, "redis: %v\n", err)
		os.Exit(1)
	}
	testRedisURL = redisURL

	code := m.Run()
	redisCleanup()
	neo4jCleanup()
	os.Exit(code)
}

func TestNeo4jRendererStoresStar(t *testing.T) {
	ctx := context.Background()
	r, err := graph.NewNeo4jRenderer(testNeo4jURI, "", "", testLogger)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close(ctx)

	g := graph.Build(knowledge.Justice, "AI", knowledge.SensoryProcessing)
	// Rendering twice must not duplicate nodes or edges.
	for i := 0; i < 2; i++ {
		if err := r.Render(ctx, g, "justice map"); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
	}

	leaves, err := r.Leaves(ctx, g.Root, string(knowledge.SensoryProcessing))
	if err != nil {
		t.Fatalf("leaves: %v", err)
	}
	want := []string{"Audio Analysis", "Image Recognition", "Text Parsing"}
	if strings.Join(leaves, ",") != strings.Join(want, ",") {
		t.Errorf("leaves = %v, want %v", leaves, want)
	}
}

func TestStreamRendererPublishes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	r, err := graph.NewStreamRenderer(testRedisURL, "conceptlab:test", testLogger)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer r.Close()

	sub := r.Subscribe(ctx)
	// Give XREAD time to block on "$" before publishing.
	time.Sleep(300 * time.Millisecond)

	g := graph.Build(knowledge.Trust, "AI", "unknown")
	if err := r.Render(ctx, g, "trust map"); err != nil {
		t.Fatalf("render: %v", err)
	}

	select {
	case msg := <-sub:
		if msg.Title != "trust map" || msg.Graph.Root != g.Root {
			t.Errorf("got %+v", msg)
		}
		if len(msg.Graph.Edges) != 4 {
			t.Errorf("got %d edges, want 4", len(msg.Graph.Edges))
		}
	case <-ctx.Done():
		t.Fatal("no map received")
	}
}

func TestServiceFansOutToBackends(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Database.Neo4j.URI = testNeo4jURI
	cfg.Database.Redis.URL = testRedisURL

	renderer, cleanup := bootstrap.Renderers(ctx, cfg, testLogger)
	defer cleanup()
	if renderer.Len() != 3 {
		t.Fatalf("got %d renderers, want log + neo4j + redis", renderer.Len())
	}

	svc := service.New(renderer, testLogger)
	out := svc.Explain(ctx, service.Index(3), "ai", knowledge.EmotionalIntegration)
	if !strings.Contains(out, "AI acquisition of 'love'") {
		t.Fatalf("got %q", out)
	}

	neo, err := graph.NewNeo4jRenderer(testNeo4jURI, "", "", testLogger)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	defer neo.Close(ctx)
	leaves, err := neo.Leaves(ctx, "AI Acquisition of 'love'", string(knowledge.EmotionalIntegration))
	if err != nil {
		t.Fatalf("leaves: %v", err)
	}
	if len(leaves) != 3 {
		t.Errorf("leaves = %v", leaves)
	}
}
