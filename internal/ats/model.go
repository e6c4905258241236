package ats

// Suggestion types.
const (
	TypeCritical = "critical"
	TypeWarning  = "warning"
	TypeInfo     = "info"
	TypeSuccess  = "success"
)

// Suggestion impacts.
const (
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
	ImpactPositive = "Positive"
)

// Scores is the per-component breakdown. Every field lies in [0, 100].
type Scores struct {
	KeywordMatch float64 `json:"keywordMatch"`
	Completeness int     `json:"completeness"`
	Formatting   int     `json:"formatting"`
	Readability  int     `json:"readability"`
	OverallScore int     `json:"overallScore"`
}

// Suggestion is a single improvement recommendation.
type Suggestion struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Impact   string `json:"impact"`
}

// SectionStatus scores one résumé section.
type SectionStatus struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// Result is the full output of one analysis.
type Result struct {
	Scores           Scores                   `json:"scores"`
	MatchedKeywords  []string                 `json:"matchedKeywords"`
	MissingKeywords  []string                 `json:"missingKeywords"`
	Suggestions      []Suggestion             `json:"suggestions"`
	IndustryInsights []string                 `json:"industryInsights"`
	Sections         map[string]SectionStatus `json:"sections"`
}

// Clone returns a deep copy so stored results cannot be changed through the original.
func (r Result) Clone() Result {
	out := r
	out.MatchedKeywords = cloneStrings(r.MatchedKeywords)
	out.MissingKeywords = cloneStrings(r.MissingKeywords)
	out.IndustryInsights = cloneStrings(r.IndustryInsights)
	if r.Suggestions != nil {
		out.Suggestions = append([]Suggestion{}, r.Suggestions...)
	}
	if r.Sections != nil {
		out.Sections = make(map[string]SectionStatus, len(r.Sections))
		for k, v := range r.Sections {
			out.Sections[k] = v
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
