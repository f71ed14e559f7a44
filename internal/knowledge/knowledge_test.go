package knowledge

import "testing"

func TestConceptAt(t *testing.T) {
	c, ok := ConceptAt(1)
	if !ok || c != Freedom {
		t.Fatalf("ConceptAt(1) = %q, %v; want freedom", c, ok)
	}
	c, ok = ConceptAt(10)
	if !ok || c != Change {
		t.Fatalf("ConceptAt(10) = %q, %v; want change", c, ok)
	}
	for _, i := range []int{0, -1, 11} {
		if _, ok := ConceptAt(i); ok {
			t.Errorf("ConceptAt(%d) should be out of range", i)
		}
	}
}

func TestTablesCoverEveryConcept(t *testing.T) {
	for _, c := range Concepts() {
		if !c.Known() {
			t.Errorf("%q not reported as known", c)
		}
		if cues := SensoryCues(c); len(cues) != 3 {
			t.Errorf("%q: got %d sensory cues, want 3", c, len(cues))
		}
		if InnateStructure(c) == FallbackInnateStructure {
			t.Errorf("%q: innate structure fell back", c)
		}
		if Emotion(c) == FallbackEmotion {
			t.Errorf("%q: emotion fell back", c)
		}
		if TrainingData(c) == FallbackTrainingData {
			t.Errorf("%q: training data fell back", c)
		}
	}
}

func TestUnknownConceptFallback(t *testing.T) {
	c := Concept("serendipity")
	if c.Known() {
		t.Fatal("serendipity should not be known")
	}
	cues := SensoryCues(c)
	if len(cues) != 1 || cues[0] != FallbackSensoryCue {
		t.Errorf("got cues %v, want fallback", cues)
	}
	if got := InnateStructure(c); got != FallbackInnateStructure {
		t.Errorf("got %q", got)
	}
	if got := Emotion(c); got != FallbackEmotion {
		t.Errorf("got %q", got)
	}
	if got := TrainingData(c); got != FallbackTrainingData {
		t.Errorf("got %q", got)
	}
}

func TestSensoryCuesReturnsCopy(t *testing.T) {
	cues := SensoryCues(Freedom)
	cues[0] = "mutated"
	if SensoryCues(Freedom)[0] != "Sigh of relief" {
		t.Fatal("table was mutated through returned slice")
	}
}

func TestSubProcesses(t *testing.T) {
	for _, c := range Categories() {
		if n := len(SubProcesses(c)); n != 3 {
			t.Errorf("%q: got %d labels, want 3", c, n)
		}
	}
	got := SubProcesses("telepathy")
	if len(got) != 4 {
		t.Fatalf("fallback: got %d labels, want 4", len(got))
	}
	for i, want := range []string{"Data Processing", "Pattern Recognition", "Feature Extraction", "Generalization"} {
		if got[i] != want {
			t.Errorf("fallback[%d] = %q, want %q", i, got[i], want)
		}
	}
	got[0] = "mutated"
	if FallbackSubProcesses[0] != "Data Processing" {
		t.Error("fallback table was mutated")
	}
}

func TestCategoryKnown(t *testing.T) {
	if !EmotionalIntegration.Known() {
		t.Error("emotional integration should be known")
	}
	if Category("Sensory Processing").Known() {
		t.Error("category matching is exact")
	}
	if _, ok := CategoryAt(6); ok {
		t.Error("CategoryAt(6) should be out of range")
	}
}
