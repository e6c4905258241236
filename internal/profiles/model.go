package profiles

import "time"

// Profile is a job seeker's structured résumé as read from the profile store.
// Optional scalar fields are pointers so an absent value is distinguishable from an empty one.
type Profile struct {
	ResumeID    string       `json:"resumeId"`
	SeekerID    string       `json:"seekerId"`
	Title       string       `json:"title,omitempty"`
	Summary     *string      `json:"summary,omitempty"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Skills      []SkillGroup `json:"skills"`
	Links       Links        `json:"links"`
	Email       *string      `json:"email,omitempty"`
	IsPrimary   bool         `json:"isPrimary"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Experience is a single work history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// Education is a single qualification entry.
type Education struct {
	Qualification string `json:"qualification"`
	Institution   string `json:"institution"`
}

// SkillGroup is a typed list of skills (e.g. "technical", "soft").
type SkillGroup struct {
	Type   string   `json:"type,omitempty"`
	Skills []string `json:"skills"`
}

// Links holds optional profile URLs.
type Links struct {
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
}

// HasSummary reports whether a non-empty summary is present.
func (p Profile) HasSummary() bool {
	return p.Summary != nil && *p.Summary != ""
}

// HasSkills reports whether at least one skill group lists a skill.
func (p Profile) HasSkills() bool {
	for _, g := range p.Skills {
		if len(g.Skills) > 0 {
			return true
		}
	}
	return false
}

// HasLinks reports whether either profile link is set.
func (p Profile) HasLinks() bool {
	return (p.Links.LinkedIn != nil && *p.Links.LinkedIn != "") ||
		(p.Links.GitHub != nil && *p.Links.GitHub != "")
}

// HasEmail reports whether a contact email is known.
func (p Profile) HasEmail() bool {
	return p.Email != nil && *p.Email != ""
}
