// Package knowledge holds the static reference tables that every cognition
// model reads from. All tables are read-only and keyed by Concept; lookups
// for unknown concepts return a fixed fallback instead of failing.
package knowledge

// Concept identifies an abstract idea whose acquisition is modelled.
type Concept string

const (
	Freedom    Concept = "freedom"
	Knowledge  Concept = "knowledge"
	Love       Concept = "love"
	Fear       Concept = "fear"
	Success    Concept = "success"
	Failure    Concept = "failure"
	Justice    Concept = "justice"
	Creativity Concept = "creativity"
	Trust      Concept = "trust"
	Change     Concept = "change"
)

// concepts is the menu order. Selectors are 1-based indexes into it.
var concepts = [...]Concept{
	Freedom, Knowledge, Love, Fear, Success,
	Failure, Justice, Creativity, Trust, Change,
}

// Fallback values returned for concepts outside the enumeration.
const (
	FallbackSensoryCue      = "General sensory input for concept acquisition"
	FallbackInnateStructure = "General neural response for concept acquisition"
	FallbackEmotion         = "Emotional response not available for this concept."
	FallbackTrainingData    = "General training data for concept acquisition"
)

var sensoryCues = map[Concept][]string{
	Freedom:    {"Sigh of relief", "Picture of Statue of Liberty", "Feeling of open space"},
	Knowledge:  {"Reading books", "Listening to lectures", "Analyzing data"},
	Love:       {"Seeing a loved one", "Hearing affectionate words", "Feeling a warm hug"},
	Fear:       {"Seeing a dangerous animal", "Hearing a loud noise", "Feeling of a fast heartbeat"},
	Success:    {"Standing ovation", "Certificates of achievement", "Hearing applause"},
	Failure:    {"Seeing a red 'X' mark", "Hearing disappointing news", "Feeling tired"},
	Justice:    {"Courtroom visuals", "Hearing the judge's verdict", "Witnessing fairness"},
	Creativity: {"Colors in an artwork", "Musical notes", "Feeling inspired"},
	Trust:      {"Handshake", "Seeing a familiar face", "Hearing reassuring words"},
	Change:     {"Leaves falling from trees", "Hearing new ideas", "Feeling uncertain"},
}

var innateStructures = map[Concept]string{
	Freedom:    "Neurons associated with positive emotions and stress relief fire when experiencing freedom.",
	Knowledge:  "Neurons in the prefrontal cortex activate to process and store new information.",
	Love:       "Oxytocin release and activation of reward-related neurons in the brain.",
	Fear:       "Activation of the amygdala, triggering the fight-or-flight response.",
	Success:    "Dopamine release and reward circuitry activation when achieving success.",
	Failure:    "Activation of error-monitoring neurons in the anterior cingulate cortex.",
	Justice:    "Activation of moral reasoning areas in the prefrontal cortex.",
	Creativity: "Activation of the default mode network associated with idea generation.",
	Trust:      "Neurons related to social bonding and oxytocin release are activated.",
	Change:     "Activation of neurons in the prefrontal cortex to adapt to new situations.",
}

var emotions = map[Concept]string{
	Freedom:    "A sense of joy, relief, and empowerment.",
	Knowledge:  "Curiosity, satisfaction, and sometimes anxiety when challenged.",
	Love:       "Warmth, attachment, vulnerability, and euphoria.",
	Fear:       "Anxiety, heightened alertness, and desire to escape.",
	Success:    "Pride, satisfaction, and motivation.",
	Failure:    "Disappointment, frustration, and determination to improve.",
	Justice:    "Righteousness, anger at injustice, and desire for fairness.",
	Creativity: "Excitement, flow, and occasional frustration.",
	Trust:      "Security, comfort, and vulnerability.",
	Change:     "Uncertainty, excitement, and fear of the unknown.",
}

var trainingData = map[Concept]string{
	Freedom:    "Articles, social media posts, and speeches about freedom.",
	Knowledge:  "Textbooks, research papers, and educational videos.",
	Love:       "Books, poems, and movies related to love.",
	Fear:       "Reports on phobias, horror movie scripts, and articles on dangers.",
	Success:    "Case studies, biographies, and motivational content.",
	Failure:    "Accounts of setbacks, failure analysis, and recovery strategies.",
	Justice:    "Legal documents, case studies, and social justice literature.",
	Creativity: "Artworks, music, and stories about creative processes.",
	Trust:      "Surveys on trust, psychological studies, and examples of trust-building.",
	Change:     "Historical accounts, trend analysis, and articles on adaptability.",
}

// Concepts returns the known concepts in menu order.
func Concepts() []Concept {
	out := make([]Concept, len(concepts))
	copy(out, concepts[:])
	return out
}

// ConceptAt resolves a 1-based menu index. ok is false outside 1..len.
func ConceptAt(index int) (Concept, bool) {
	if index < 1 || index > len(concepts) {
		return "", false
	}
	return concepts[index-1], true
}

// Known reports whether c belongs to the enumeration.
func (c Concept) Known() bool {
	_, ok := emotions[c]
	return ok
}

// SensoryCues returns the ordered sensory cues for c. The returned slice is
// a copy and may be modified by the caller.
func SensoryCues(c Concept) []string {
	cues, ok := sensoryCues[c]
	if !ok {
		return []string{FallbackSensoryCue}
	}
	out := make([]string, len(cues))
	copy(out, cues)
	return out
}

// InnateStructure returns the neural-structure description for c.
func InnateStructure(c Concept) string {
	if s, ok := innateStructures[c]; ok {
		return s
	}
	return FallbackInnateStructure
}

// Emotion returns the emotional profile for c.
func Emotion(c Concept) string {
	if s, ok := emotions[c]; ok {
		return s
	}
	return FallbackEmotion
}

// TrainingData returns the training-corpus description for c.
func TrainingData(c Concept) string {
	if s, ok := trainingData[c]; ok {
		return s
	}
	return FallbackTrainingData
}
