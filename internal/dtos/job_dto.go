package dtos

// JobCreationRequest carries the admin "nieuwe vacature" form. Hours and Rate
// arrive as text (some clients post free-text hours) and are normalized by the
// validator.
type JobCreationRequest struct {
	Title       string `form:"title" json:"title"`
	Hours       string `form:"hours" json:"hours"`
	Rate        string `form:"rate" json:"rate"`
	Description string `form:"description" json:"description"`

	// Optional Fields
	Duration   string   `form:"duration" json:"duration"`
	StartDate  string   `form:"start_date" json:"start_date"`
	Location   string   `form:"location" json:"location"`
	Company    string   `form:"company" json:"company"`
	Categories []string `form:"categories" json:"categories"`
}
