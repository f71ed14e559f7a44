package knowledge

// Category is a cognitive dimension along which acquisition is explained.
type Category string

const (
	SensoryProcessing     Category = "sensory processing"
	ContextInterpretation Category = "context interpretation"
	MemoryRetrieval       Category = "memory retrieval"
	ReinforcementLearning Category = "reinforcement learning"
	EmotionalIntegration  Category = "emotional integration"
)

var categories = [...]Category{
	SensoryProcessing,
	ContextInterpretation,
	MemoryRetrieval,
	ReinforcementLearning,
	EmotionalIntegration,
}

// Categories returns the known categories in menu order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryAt resolves a 1-based menu index.
func CategoryAt(index int) (Category, bool) {
	if index < 1 || index > len(categories) {
		return "", false
	}
	return categories[index-1], true
}

// Known reports whether c is one of the five dimensions.
func (c Category) Known() bool {
	switch c {
	case SensoryProcessing, ContextInterpretation, MemoryRetrieval,
		ReinforcementLearning, EmotionalIntegration:
		return true
	}
	return false
}

// FallbackSubProcesses is used by the AI model for unrecognized categories.
var FallbackSubProcesses = []string{
	"Data Processing", "Pattern Recognition", "Feature Extraction", "Generalization",
}

// SubProcesses returns the AI sub-process labels attributed to c, in graph
// insertion order. Unknown categories yield FallbackSubProcesses.
func SubProcesses(c Category) []string {
	var labels []string
	switch c {
	case SensoryProcessing:
		labels = []string{"Image Recognition", "Audio Analysis", "Text Parsing"}
	case ContextInterpretation:
		labels = []string{"Pattern Recognition", "Sentiment Analysis", "Contextual Understanding"}
	case MemoryRetrieval:
		labels = []string{"Knowledge Graphs", "Neural Network Weights", "Pre-trained Models"}
	case ReinforcementLearning:
		labels = []string{"Trial and Error", "Reward Signal", "Policy Update"}
	case EmotionalIntegration:
		labels = []string{"Sentiment Analysis", "Emotion Simulation", "User Feedback"}
	default:
		labels = make([]string, len(FallbackSubProcesses))
		copy(labels, FallbackSubProcesses)
	}
	return labels
}
