package cognition

import (
	"context"
	"fmt"

	"github.com/nidhogg/concept-lab/internal/graph"
	"github.com/nidhogg/concept-lab/internal/knowledge"
	"go.uber.org/zap"
)

// ModelParameters is the fixed architecture the AI model claims to use.
type ModelParameters struct {
	Layers      int `json:"layers"`
	HiddenUnits int `json:"hidden_units"`
}

func (p ModelParameters) String() string {
	return fmt.Sprintf("{'layers': %d, 'hidden_units': %d}", p.Layers, p.HiddenUnits)
}

// DefaultModelParameters does not vary by concept.
var DefaultModelParameters = ModelParameters{Layers: 12, HiddenUnits: 768}

// ReinforcementDescription is shared by every AI profile.
const ReinforcementDescription = "Reward-based learning mechanisms"

// AIProfile describes the data a model would be trained on for a concept.
type AIProfile struct {
	TrainingData          string
	ModelParameters       ModelParameters
	FineTuningData        string
	ReinforcementLearning string
}

// AIModel explains concept acquisition as a trained model would, and draws
// an acquisition graph for every explanation.
type AIModel struct {
	concept  knowledge.Concept
	profile  AIProfile
	renderer graph.Renderer
	logger   *zap.Logger
}

// NewAIModel never fails. A nil renderer discards graphs.
func NewAIModel(c knowledge.Concept, renderer graph.Renderer, logger *zap.Logger) *AIModel {
	if renderer == nil {
		renderer = graph.NopRenderer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AIModel{
		concept: c,
		profile: AIProfile{
			TrainingData:          knowledge.TrainingData(c),
			ModelParameters:       DefaultModelParameters,
			FineTuningData:        fmt.Sprintf("Domain-specific data related to '%s'", c),
			ReinforcementLearning: ReinforcementDescription,
		},
		renderer: renderer,
		logger:   logger,
	}
}

func (m *AIModel) Concept() knowledge.Concept { return m.concept }

// Profile returns the model's profile.
func (m *AIModel) Profile() AIProfile { return m.profile }

// Graph builds the acquisition graph for category without rendering it.
func (m *AIModel) Graph(category knowledge.Category) *graph.Graph {
	return graph.Build(m.concept, KindAI.Label(), category)
}

// Explain renders the acquisition graph and returns the textual account.
// Unknown categories use the fallback sub-process set; a renderer failure
// is logged and does not change the result.
func (m *AIModel) Explain(ctx context.Context, category knowledge.Category) string {
	g := m.Graph(category)
	title := graph.Title(KindAI.Label(), m.concept, category)

	if err := m.renderer.Render(ctx, g, title); err != nil {
		m.logger.Warn("concept map render failed",
			zap.String("concept", string(m.concept)),
			zap.String("category", string(category)),
			zap.Error(err))
	} else {
		m.logger.Debug("concept map rendered",
			zap.String("concept", string(m.concept)),
			zap.String("category", string(category)),
			zap.Int("nodes", len(g.Nodes)))
	}

	return fmt.Sprintf(
		"AI acquisition of '%s' in category '%s':\n"+
			"A concept map representing the key components has been generated.\n\n"+
			"Additional Details:\n"+
			"Training Data: %s\n"+
			"Model Parameters: %s\n"+
			"Fine Tuning Data: %s\n"+
			"Reinforcement Learning: %s",
		m.concept, category,
		m.profile.TrainingData,
		m.profile.ModelParameters,
		m.profile.FineTuningData,
		m.profile.ReinforcementLearning,
	)
}
