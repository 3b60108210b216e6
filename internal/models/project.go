package models

// Project is a portfolio entry owned by exactly one user. CreatedBy is set
// once at creation and never reassigned. Timestamps are Unix milliseconds.
type Project struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies,omitempty"` // comma separated
	Link         string `json:"link,omitempty"`
	CreatedBy    int64  `json:"-"` // owner user id, implicit from the session
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}
