package service

import (
	"context"
	"strings"
	"testing"

	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"go.uber.org/zap"
)

func newTestService() (*ExplanationService, *graph.Recorder) {
	rec := &graph.Recorder{}
	return New(rec, zap.NewNop()), rec
}

func TestExplainInvalidInputs(t *testing.T) {
	svc, rec := newTestService()
	ctx := context.Background()

	if got := svc.Explain(ctx, Index(0), "human", knowledge.SensoryProcessing); got != InvalidConcept {
		t.Errorf("index 0: got %q", got)
	}
	if got := svc.Explain(ctx, Index(11), "ai", knowledge.SensoryProcessing); got != InvalidConcept {
		t.Errorf("index 11: got %q", got)
	}
	if got := svc.Explain(ctx, Index(1), "martian", knowledge.SensoryProcessing); got != InvalidSystem {
		t.Errorf("martian: got %q", got)
	}
	if got := svc.Explain(ctx, Quit(), "martian", "anything"); got != ChatEnded {
		t.Errorf("quit: got %q", got)
	}
	if rec.Count() != 0 {
		t.Errorf("invalid inputs rendered %d graphs", rec.Count())
	}
}

func TestExplainHuman(t *testing.T) {
	svc, rec := newTestService()
	got := svc.Explain(context.Background(), Index(1), "HUMAN", knowledge.EmotionalIntegration)
	want := "\n--- Human Concept Acquisition Process ---\n" +
		"Category: emotional integration\n" +
		"Human acquisition of 'freedom':\n" +
		"Emotional Integration: A sense of joy, relief, and empowerment."
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
	if rec.Count() != 0 {
		t.Error("human path must not render a graph")
	}
}

func TestExplainHumanInvalidCategory(t *testing.T) {
	svc, _ := newTestService()
	got := svc.Explain(context.Background(), Index(2), "human", "telepathy")
	if !strings.HasSuffix(got, "Invalid category.") {
		t.Errorf("got %q", got)
	}
}

func TestExplainAI(t *testing.T) {
	svc, rec := newTestService()
	got := svc.Explain(context.Background(), Index(10), "Ai", knowledge.ReinforcementLearning)
	if !strings.HasPrefix(got, "\n--- AI Concept Acquisition Process ---\nCategory: reinforcement learning\n") {
		t.Errorf("unexpected header in %q", got)
	}
	if !strings.Contains(got, "AI acquisition of 'change'") {
		t.Errorf("missing concept in %q", got)
	}
	if !strings.HasSuffix(got, ClosingMessage) {
		t.Errorf("missing closing message in %q", got)
	}
	if rec.Count() != 1 {
		t.Errorf("rendered %d graphs, want 1", rec.Count())
	}
}

func TestExplainIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	for i := 1; i <= 10; i++ {
		for _, sys := range []string{"human", "ai"} {
			a := svc.Explain(ctx, Index(i), sys, knowledge.MemoryRetrieval)
			b := svc.Explain(ctx, Index(i), sys, knowledge.MemoryRetrieval)
			if a != b {
				t.Errorf("%d/%s differs across calls", i, sys)
			}
		}
	}
}

func TestParseSelector(t *testing.T) {
	cases := []struct {
		in   string
		quit bool
		str  string
	}{
		{"quit", true, "quit"},
		{"QUIT", true, "quit"},
		{" 3 ", false, "3"},
		{"10", false, "10"},
		{"-1", false, "0"},
		{"two", false, "0"},
		{"", false, "0"},
	}
	for _, tc := range cases {
		sel := ParseSelector(tc.in)
		if sel.IsQuit() != tc.quit || sel.String() != tc.str {
			t.Errorf("ParseSelector(%q) = %v (quit=%v)", tc.in, sel, sel.IsQuit())
		}
	}
	if c, ok := ParseSelector("4").Concept(); !ok || c != knowledge.Fear {
		t.Errorf("4 resolved to %q, %v", c, ok)
	}
}

func TestGraph(t *testing.T) {
	svc, rec := newTestService()
	g := svc.Graph(knowledge.Love, knowledge.ContextInterpretation)
	if len(g.Nodes) != 4 {
		t.Errorf("got %d nodes", len(g.Nodes))
	}
	if rec.Count() != 0 {
		t.Error("Graph must not render")
	}
}
