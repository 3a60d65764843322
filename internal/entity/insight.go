package entity

// Segment is one extracted {insight, suggestion} pair from generated report
// text. Either field may be empty, never both; segments keep the order they
// appeared in the source text.
type Segment struct {
	Insight    string `json:"insight"`
	Suggestion string `json:"suggestion"`
}

// InsightReport is the /insights response payload: the segmented report
// plus the raw generated text it was extracted from.
type InsightReport struct {
	Segments []Segment `json:"segments"`
	RawText  string    `json:"rawText"`
	Message  string    `json:"message,omitempty"`
}
