package ats

import "strings"

type insightRule struct {
	triggers []string
	insights []string
}

// Only the first matching rule contributes.
var insightRules = []insightRule{
	{
		triggers: []string{"software"},
		insights: []string{
			"Tech roles often value GitHub profiles and open source contributions",
			"Include specific technologies and version numbers when applicable",
		},
	},
	{
		triggers: []string{"manager"},
		insights: []string{
			"Leadership experience and team size metrics are crucial",
			"Include budget management and project success metrics",
		},
	},
	{
		triggers: []string{"data", "analyst"},
		insights: []string{
			"Highlight specific tools like Python, R, SQL, and visualization platforms",
			"Include metrics on data processing volume and impact",
		},
	},
}

var genericInsights = []string{
	"Tailor your resume to match industry-specific keywords",
	"Use action verbs and quantify your achievements",
	"Keep your resume concise and relevant to the position",
}

// IndustryInsights returns advisory text for the first industry the job description
// mentions, or generic advice when none match.
func IndustryInsights(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)
	for _, rule := range insightRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(lower, trigger) {
				return append([]string(nil), rule.insights...)
			}
		}
	}
	return append([]string(nil), genericInsights...)
}
