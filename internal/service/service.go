// Package service is the entry point used by every surface (terminal,
// HTTP, chat gateways). It validates selectors, instantiates the chosen
// model and returns its explanation as a user-facing string.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nidhogg/concept-lab/internal/cognition"
	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"go.uber.org/zap"
)

// Terminal results. None of them are errors.
const (
	ChatEnded      = "Chat ended."
	InvalidConcept = "Invalid concept choice. Please choose a number between 1 and 10."
	InvalidSystem  = "Invalid cognitive system. Please choose either 'human' or 'ai'."
	ClosingMessage = "\nThe exploration of the concept is complete. " +
		"Feel free to choose another concept to explore!"
)

// QuitWord ends a conversation wherever a concept selector is expected.
const QuitWord = "quit"

// Selector picks a concept by 1-based menu index, or ends the chat.
type Selector struct {
	index int
	quit  bool
}

// Index selects the i-th concept (1-based).
func Index(i int) Selector { return Selector{index: i} }

// Quit is the termination sentinel.
func Quit() Selector { return Selector{quit: true} }

// ParseSelector reads user input. "quit" matches in any case; anything
// that is not a plain decimal number becomes an out-of-range index.
func ParseSelector(s string) Selector {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, QuitWord) {
		return Quit()
	}
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Index(0)
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return Index(0)
	}
	return Index(i)
}

// IsQuit reports whether s is the termination sentinel.
func (s Selector) IsQuit() bool { return s.quit }

// Concept resolves the selector against the concept menu.
func (s Selector) Concept() (knowledge.Concept, bool) {
	if s.quit {
		return "", false
	}
	return knowledge.ConceptAt(s.index)
}

func (s Selector) String() string {
	if s.quit {
		return QuitWord
	}
	return strconv.Itoa(s.index)
}

// ExplanationService builds a fresh model per call; nothing is cached
// between calls.
type ExplanationService struct {
	renderer graph.Renderer
	logger   *zap.Logger
}

// New returns a service that hands AI graphs to renderer.
func New(renderer graph.Renderer, logger *zap.Logger) *ExplanationService {
	if renderer == nil {
		renderer = graph.NopRenderer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplanationService{renderer: renderer, logger: logger}
}

// Explain validates the inputs in order (quit, concept, system) and returns
// the chosen model's explanation. Every input yields a string.
func (s *ExplanationService) Explain(ctx context.Context, sel Selector, system string, category knowledge.Category) string {
	if sel.IsQuit() {
		return ChatEnded
	}
	concept, ok := sel.Concept()
	if !ok {
		return InvalidConcept
	}
	kind, ok := cognition.ParseKind(system)
	if !ok {
		return InvalidSystem
	}

	s.logger.Debug("explaining concept",
		zap.String("concept", string(concept)),
		zap.String("system", string(kind)),
		zap.String("category", string(category)))

	var model cognition.Explainer
	if kind == cognition.KindAI {
		model = cognition.NewAIModel(concept, s.renderer, s.logger)
	} else {
		model = cognition.NewHumanModel(concept)
	}

	out := fmt.Sprintf("\n--- %s Concept Acquisition Process ---\nCategory: %s\n", kind.Label(), category) +
		model.Explain(ctx, category)
	if kind == cognition.KindAI {
		out += ClosingMessage
	}
	return out
}

// Graph builds the AI acquisition graph for a concept without rendering it.
func (s *ExplanationService) Graph(concept knowledge.Concept, category knowledge.Category) *graph.Graph {
	return cognition.NewAIModel(concept, nil, nil).Graph(category)
}
