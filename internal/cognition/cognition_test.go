package cognition

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"go.uber.org/zap"
)

func TestHumanExplainEveryConceptAndCategory(t *testing.T) {
	ctx := context.Background()
	for _, c := range knowledge.Concepts() {
		m := NewHumanModel(c)
		p := m.Profile()
		fields := map[knowledge.Category]string{
			knowledge.SensoryProcessing:     strings.Join(p.SensoryInputs, ", "),
			knowledge.ContextInterpretation: p.SituationalContext,
			knowledge.MemoryRetrieval:       p.Memory,
			knowledge.ReinforcementLearning: p.InnateStructure,
			knowledge.EmotionalIntegration:  p.Emotions,
		}
		for cat, field := range fields {
			got := m.Explain(ctx, cat)
			if !strings.Contains(got, string(c)) {
				t.Errorf("%s/%s: missing concept name in %q", c, cat, got)
			}
			if !strings.Contains(got, field) {
				t.Errorf("%s/%s: missing field %q in %q", c, cat, field, got)
			}
			if n := strings.Count(got, "\n"); n != 1 {
				t.Errorf("%s/%s: got %d newlines, want 1", c, cat, n)
			}
		}
	}
}

func TestHumanExplainFreedomEmotion(t *testing.T) {
	got := NewHumanModel(knowledge.Freedom).Explain(context.Background(), knowledge.EmotionalIntegration)
	want := "Human acquisition of 'freedom':\nEmotional Integration: A sense of joy, relief, and empowerment."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHumanExplainInvalidCategory(t *testing.T) {
	m := NewHumanModel(knowledge.Love)
	for _, cat := range []knowledge.Category{"", "telepathy", "Sensory Processing"} {
		if got := m.Explain(context.Background(), cat); got != InvalidCategory {
			t.Errorf("%q: got %q, want %q", cat, got, InvalidCategory)
		}
	}
}

func TestHumanUnknownConcept(t *testing.T) {
	m := NewHumanModel("serendipity")
	p := m.Profile()
	if len(p.SensoryInputs) != 1 || p.SensoryInputs[0] != knowledge.FallbackSensoryCue {
		t.Errorf("sensory inputs = %v", p.SensoryInputs)
	}
	if p.InnateStructure != knowledge.FallbackInnateStructure {
		t.Errorf("innate = %q", p.InnateStructure)
	}
	if p.Emotions != knowledge.FallbackEmotion {
		t.Errorf("emotions = %q", p.Emotions)
	}
	got := m.Explain(context.Background(), knowledge.SensoryProcessing)
	if !strings.HasSuffix(got, knowledge.FallbackSensoryCue) {
		t.Errorf("got %q", got)
	}
}

func TestHumanProfileIsolated(t *testing.T) {
	m := NewHumanModel(knowledge.Fear)
	p := m.Profile()
	p.SensoryInputs[0] = "mutated"
	if m.Profile().SensoryInputs[0] == "mutated" {
		t.Fatal("profile mutated through copy")
	}
}

func TestAIExplainRendersGraph(t *testing.T) {
	rec := &graph.Recorder{}
	m := NewAIModel(knowledge.Knowledge, rec, zap.NewNop())

	got := m.Explain(context.Background(), knowledge.SensoryProcessing)
	if rec.Count() != 1 {
		t.Fatalf("rendered %d graphs, want 1", rec.Count())
	}
	g, title := rec.Last()
	if g.Root != "AI Acquisition of 'knowledge'" {
		t.Errorf("root = %q", g.Root)
	}
	if title != "Concept Map for AI Acquisition of 'knowledge' - sensory processing" {
		t.Errorf("title = %q", title)
	}

	for _, want := range []string{
		"AI acquisition of 'knowledge' in category 'sensory processing':",
		"A concept map representing the key components has been generated.",
		"Training Data: Textbooks, research papers, and educational videos.",
		"Model Parameters: {'layers': 12, 'hidden_units': 768}",
		"Fine Tuning Data: Domain-specific data related to 'knowledge'",
		"Reinforcement Learning: Reward-based learning mechanisms",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestAIExplainUnknownCategory(t *testing.T) {
	rec := &graph.Recorder{}
	m := NewAIModel(knowledge.Trust, rec, zap.NewNop())
	got := m.Explain(context.Background(), "astral projection")
	if got == InvalidCategory || !strings.Contains(got, "'astral projection'") {
		t.Fatalf("unexpected result %q", got)
	}
	g, _ := rec.Last()
	leaves := g.Leaves()
	want := []string{"Data Processing", "Pattern Recognition", "Feature Extraction", "Generalization"}
	if len(leaves) != len(want) {
		t.Fatalf("leaves = %v", leaves)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d = %q, want %q", i, leaves[i], want[i])
		}
	}
}

func TestAIExplainSurvivesRenderFailure(t *testing.T) {
	failing := graph.RendererFunc(func(context.Context, *graph.Graph, string) error {
		return errors.New("display unavailable")
	})
	a := NewAIModel(knowledge.Change, failing, zap.NewNop()).Explain(context.Background(), knowledge.MemoryRetrieval)
	b := NewAIModel(knowledge.Change, nil, nil).Explain(context.Background(), knowledge.MemoryRetrieval)
	if a != b {
		t.Errorf("render failure changed the result:\n%s\nvs\n%s", a, b)
	}
}

func TestAIUnknownConcept(t *testing.T) {
	m := NewAIModel("serendipity", nil, nil)
	if m.Profile().TrainingData != knowledge.FallbackTrainingData {
		t.Errorf("training data = %q", m.Profile().TrainingData)
	}
	if m.Profile().ModelParameters != DefaultModelParameters {
		t.Errorf("params = %v", m.Profile().ModelParameters)
	}
}

func TestExplainIdempotent(t *testing.T) {
	ctx := context.Background()
	ai := NewAIModel(knowledge.Justice, nil, nil)
	hu := NewHumanModel(knowledge.Justice)
	for _, cat := range knowledge.Categories() {
		if ai.Explain(ctx, cat) != ai.Explain(ctx, cat) {
			t.Errorf("ai %s not idempotent", cat)
		}
		if hu.Explain(ctx, cat) != hu.Explain(ctx, cat) {
			t.Errorf("human %s not idempotent", cat)
		}
	}
}

func TestParseKind(t *testing.T) {
	cases := map[string]Kind{"human": KindHuman, "HUMAN": KindHuman, " Ai ": KindAI}
	for in, want := range cases {
		got, ok := ParseKind(in)
		if !ok || got != want {
			t.Errorf("ParseKind(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseKind("martian"); ok {
		t.Error("martian should not parse")
	}
}

func TestModelParametersString(t *testing.T) {
	got := DefaultModelParameters.String()
	if want := "{'layers': 12, 'hidden_units': 768}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
