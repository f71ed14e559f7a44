package cognition

import (
	"context"
	"fmt"
	"strings"

	"github.com/nidhogg/concept-lab/internal/knowledge"
)

// InvalidCategory is the human model's answer to an unknown category.
const InvalidCategory = "Invalid category."

// HumanProfile grounds a concept in sensory, situational, mnemonic,
// innate and emotional terms.
type HumanProfile struct {
	SensoryInputs      []string
	SituationalContext string
	Memory             string
	InnateStructure    string
	Emotions           string
}

// HumanModel explains concept acquisition as experienced by a person.
type HumanModel struct {
	concept knowledge.Concept
	profile HumanProfile
}

// NewHumanModel never fails; unknown concepts use fallback table values.
func NewHumanModel(c knowledge.Concept) *HumanModel {
	return &HumanModel{
		concept: c,
		profile: HumanProfile{
			SensoryInputs:      knowledge.SensoryCues(c),
			SituationalContext: fmt.Sprintf("Cultural and social environment specific to '%s'", c),
			Memory:             fmt.Sprintf("Past experiences and knowledge related to '%s'", c),
			InnateStructure:    knowledge.InnateStructure(c),
			Emotions:           knowledge.Emotion(c),
		},
	}
}

func (m *HumanModel) Concept() knowledge.Concept { return m.concept }

// Profile returns a copy of the model's profile.
func (m *HumanModel) Profile() HumanProfile {
	p := m.profile
	p.SensoryInputs = append([]string(nil), m.profile.SensoryInputs...)
	return p
}

// Explain returns a header line naming the concept followed by the profile
// field selected by category, or InvalidCategory.
func (m *HumanModel) Explain(_ context.Context, category knowledge.Category) string {
	var label, value string
	switch category {
	case knowledge.SensoryProcessing:
		label, value = "Sensory Inputs", strings.Join(m.profile.SensoryInputs, ", ")
	case knowledge.ContextInterpretation:
		label, value = "Situational Context", m.profile.SituationalContext
	case knowledge.MemoryRetrieval:
		label, value = "Memory Retrieval", m.profile.Memory
	case knowledge.ReinforcementLearning:
		label, value = "Innate Structure", m.profile.InnateStructure
	case knowledge.EmotionalIntegration:
		label, value = "Emotional Integration", m.profile.Emotions
	default:
		return InvalidCategory
	}
	return fmt.Sprintf("Human acquisition of '%s':\n%s: %s", m.concept, label, value)
}
