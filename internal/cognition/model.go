// Package cognition implements the two concept-acquisition models. Each
// model builds an immutable profile from the knowledge tables at
// construction and renders category-specific explanations from it.
package cognition

import (
	"context"
	"strings"

	"github.com/nidhogg/concept-lab/internal/knowledge"
)

// Kind selects a cognitive system.
type Kind string

const (
	KindHuman Kind = "human"
	KindAI    Kind = "ai"
)

// ParseKind accepts "human" or "ai" in any case.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHuman, KindAI:
		return k, true
	}
	return "", false
}

// Label is the display name used in headers and graph roots.
func (k Kind) Label() string {
	if k == KindAI {
		return "AI"
	}
	return "Human"
}

// Explainer renders an acquisition explanation for one category.
type Explainer interface {
	Concept() knowledge.Concept
	Explain(ctx context.Context, category knowledge.Category) string
}
