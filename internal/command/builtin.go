package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"github.com/nidhogg/concept-lab/internal/service"
)

// RegisterBuiltins adds the standard command set to reg.
func RegisterBuiltins(reg *Registry) {
	reg.Register(&Command{
		Name:        "help",
		Description: "List available commands",
		Usage:       "/help",
		Handler: func(_ context.Context, _ string, _ *CommandContext) (*CommandResult, error) {
			var b strings.Builder
			b.WriteString("Available commands:")
			for _, c := range reg.List() {
				fmt.Fprintf(&b, "\n  %s — %s", c.Usage, c.Description)
			}
			return &CommandResult{Content: b.String()}, nil
		},
	})

	reg.Register(&Command{
		Name:        "concepts",
		Description: "List concepts with their numbers",
		Usage:       "/concepts",
		Handler: func(_ context.Context, _ string, _ *CommandContext) (*CommandResult, error) {
			concepts := knowledge.Concepts()
			lines := make([]string, len(concepts))
			for i, c := range concepts {
				lines[i] = fmt.Sprintf("%d. %s", i+1, c)
			}
			return &CommandResult{Content: strings.Join(lines, "\n"), Data: concepts}, nil
		},
	})

	reg.Register(&Command{
		Name:        "categories",
		Description: "List categories with their numbers",
		Usage:       "/categories",
		Handler: func(_ context.Context, _ string, _ *CommandContext) (*CommandResult, error) {
			cats := knowledge.Categories()
			lines := make([]string, len(cats))
			for i, c := range cats {
				lines[i] = fmt.Sprintf("%d. %s", i+1, c)
			}
			return &CommandResult{Content: strings.Join(lines, "\n"), Data: cats}, nil
		},
	})

	reg.Register(&Command{
		Name:        "explain",
		Description: "Explain a concept in one shot",
		Usage:       "/explain <concept#> <human|ai> <category#>",
		Handler:     handleExplain,
	})

	reg.Register(&Command{
		Name:        "graph",
		Description: "Show the AI acquisition graph as text",
		Usage:       "/graph <concept#> <category#>",
		Handler:     handleGraph,
	})

	reg.Register(&Command{
		Name:        "reset",
		Description: "Restart the guided conversation",
		Usage:       "/reset",
		Handler: func(_ context.Context, _ string, cc *CommandContext) (*CommandResult, error) {
			if cc.Dialogues == nil || !cc.Dialogues.Reset(cc.SessionKey) {
				return &CommandResult{Content: "No conversation in progress."}, nil
			}
			return &CommandResult{Content: "Conversation reset. Send any message to start again."}, nil
		},
	})
}

func handleExplain(ctx context.Context, args string, cc *CommandContext) (*CommandResult, error) {
	fields := strings.Fields(args)
	if len(fields) != 3 {
		return &CommandResult{Content: "Usage: /explain <concept#> <human|ai> <category#>"}, nil
	}
	if cc.Service == nil {
		return nil, fmt.Errorf("explanation service not configured")
	}
	cat, ok := categoryArg(fields[2])
	if !ok {
		return &CommandResult{Content: "Invalid category choice. Please choose a number between 1 and 5."}, nil
	}
	out := cc.Service.Explain(ctx, service.ParseSelector(fields[0]), fields[1], cat)
	return &CommandResult{Content: strings.TrimPrefix(out, "\n")}, nil
}

func handleGraph(_ context.Context, args string, cc *CommandContext) (*CommandResult, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return &CommandResult{Content: "Usage: /graph <concept#> <category#>"}, nil
	}
	if cc.Service == nil {
		return nil, fmt.Errorf("explanation service not configured")
	}
	concept, ok := service.ParseSelector(fields[0]).Concept()
	if !ok {
		return &CommandResult{Content: service.InvalidConcept}, nil
	}
	cat, ok := categoryArg(fields[1])
	if !ok {
		return &CommandResult{Content: "Invalid category choice. Please choose a number between 1 and 5."}, nil
	}
	g := cc.Service.Graph(concept, cat)
	return &CommandResult{Content: graph.Text(g, graph.Title("AI", concept, cat)), Data: g}, nil
}

func categoryArg(s string) (knowledge.Category, bool) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}
	return knowledge.CategoryAt(i)
}
