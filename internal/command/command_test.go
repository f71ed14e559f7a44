package command

import (
	"context"
	"strings"
	"testing"

	"github.com/nidhogg/concept-lab/internal/dialogue"
	"github.com/nidhogg/concept-lab/internal/service"
	"go.uber.org/zap"
)

func TestRegistryDispatch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{
		Name:        "ping",
		Description: "Ping test",
		Usage:       "/ping",
		Handler: func(ctx context.Context, args string, cc *CommandContext) (*CommandResult, error) {
			return &CommandResult{Content: "pong: " + args}, nil
		},
	})

	ctx := context.Background()
	cc := &CommandContext{Platform: "test"}

	// Test known command
	result, err := reg.Dispatch(ctx, "/ping hello", cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Content != "pong: hello" {
		t.Errorf("got %q, want %q", result.Content, "pong: hello")
	}

	// Test unknown command
	result, err = reg.Dispatch(ctx, "/unknown", cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Content, "Unknown command") {
		t.Errorf("got %q", result.Content)
	}
}

func TestRegistryList(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Command{Name: "beta"})
	reg.Register(&Command{Name: "alpha"})

	list := reg.List()
	if len(list) != 2 {
		t.Fatalf("got %d commands, want 2", len(list))
	}
	if list[0].Name != "alpha" {
		t.Errorf("got %q first, want %q", list[0].Name, "alpha")
	}
}

func newBuiltinContext() (*Registry, *CommandContext) {
	reg := NewRegistry()
	RegisterBuiltins(reg)
	svc := service.New(nil, zap.NewNop())
	return reg, &CommandContext{
		Platform:   "test",
		SessionKey: "test:c:u",
		Service:    svc,
		Dialogues:  dialogue.NewManager(svc, zap.NewNop()),
	}
}

func TestBuiltinExplain(t *testing.T) {
	reg, cc := newBuiltinContext()
	ctx := context.Background()

	res, err := reg.Dispatch(ctx, "/explain 1 human 5", cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Content, "A sense of joy, relief, and empowerment.") {
		t.Errorf("got %q", res.Content)
	}

	res, _ = reg.Dispatch(ctx, "/explain 0 human 1", cc)
	if res.Content != service.InvalidConcept {
		t.Errorf("got %q", res.Content)
	}
	res, _ = reg.Dispatch(ctx, "/explain 1 martian 1", cc)
	if res.Content != service.InvalidSystem {
		t.Errorf("got %q", res.Content)
	}
	res, _ = reg.Dispatch(ctx, "/explain 1", cc)
	if !strings.HasPrefix(res.Content, "Usage:") {
		t.Errorf("got %q", res.Content)
	}
}

func TestBuiltinGraph(t *testing.T) {
	reg, cc := newBuiltinContext()
	res, err := reg.Dispatch(context.Background(), "/GRAPH 3 4", cc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"AI Acquisition of 'love'", "Trial and Error", "Reward Signal", "Policy Update"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("missing %q in %q", want, res.Content)
		}
	}
}

func TestBuiltinReset(t *testing.T) {
	reg, cc := newBuiltinContext()
	ctx := context.Background()

	res, _ := reg.Dispatch(ctx, "/reset", cc)
	if res.Content != "No conversation in progress." {
		t.Errorf("got %q", res.Content)
	}
	cc.Dialogues.Handle(ctx, cc.SessionKey, "hi")
	res, _ = reg.Dispatch(ctx, "/reset", cc)
	if !strings.HasPrefix(res.Content, "Conversation reset") {
		t.Errorf("got %q", res.Content)
	}
}

func TestBuiltinHelpListsCommands(t *testing.T) {
	reg, cc := newBuiltinContext()
	res, _ := reg.Dispatch(context.Background(), "/help", cc)
	for _, name := range []string{"/concepts", "/categories", "/explain", "/graph", "/reset"} {
		if !strings.Contains(res.Content, name) {
			t.Errorf("help missing %s", name)
		}
	}
}
