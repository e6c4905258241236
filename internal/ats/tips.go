package ats

// TipCategory groups static ATS advice.
type TipCategory struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
}

var tipCatalogue = []TipCategory{
	{
		Category: "Format",
		Tips: []string{
			"Use standard fonts like Arial, Calibri, or Times New Roman",
			"Stick to simple formatting - avoid tables, columns, or graphics",
			"Save your resume as .docx or .pdf (check job posting preference)",
			`Use standard section headers like "Experience" and "Education"`,
		},
	},
	{
		Category: "Keywords",
		Tips: []string{
			"Mirror the exact keywords from the job description",
			`Include both acronyms and full terms (e.g., "AI" and "Artificial Intelligence")`,
			"Use industry-standard job titles",
			"Include relevant certifications and tools",
		},
	},
	{
		Category: "Content",
		Tips: []string{
			"Start bullet points with action verbs",
			"Quantify achievements with numbers and percentages",
			"Include a skills section with relevant technical skills",
			"Keep your resume to 2 pages maximum for most roles",
		},
	},
	{
		Category: "Optimization",
		Tips: []string{
			"Tailor your resume for each application",
			"Place most important information in the top third",
			"Use consistent date formatting throughout",
			"Avoid headers, footers, and page numbers",
		},
	},
}

// Tips returns a copy of the static tips catalogue.
func Tips() []TipCategory {
	out := make([]TipCategory, len(tipCatalogue))
	for i, c := range tipCatalogue {
		out[i] = TipCategory{Category: c.Category, Tips: append([]string(nil), c.Tips...)}
	}
	return out
}
