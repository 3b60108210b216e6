package dto

import "portfolio_backend/internal/models"

// Project is the wire representation of a portfolio project. It omits the
// owner reference: ownership is implicit from the authenticated session and
// never client-supplied.
type Project struct {
	ID           int64  `json:"id"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
}

// FromEntity maps a persisted project to its wire shape. Pure mapping, no
// behavior.
func FromEntity(p models.Project) Project {
	return Project{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: p.Technologies,
		Link:         p.Link,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToEntity maps the wire shape back to a persistence record. Owner and
// timestamps are not part of the DTO and must be attached by the caller.
func (d Project) ToEntity() models.Project {
	return models.Project{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Technologies: d.Technologies,
		Link:         d.Link,
	}
}

// FromEntities maps a slice of persisted projects.
func FromEntities(ps []models.Project) []Project {
	out := make([]Project, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromEntity(p))
	}
	return out
}
