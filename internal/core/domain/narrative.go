package domain

// NarrativeSource tells whether narrative text came from the external
// provider or from the deterministic local fallback.
type NarrativeSource string

const (
	NarrativeGenerated NarrativeSource = "generated"
	NarrativeFallback  NarrativeSource = "fallback"
)

// Narrative is the result of a narrative-generation call. Provider
// failures never escape as errors; they surface as a fallback-sourced
// narrative that downstream assembly handles as a first-class branch.
type Narrative struct {
	Text   string
	Source NarrativeSource
}
