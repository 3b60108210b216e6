package models

import "time"

// Profile is the single owner profile shown on the public portfolio page.
// There is exactly one row; updates overwrite it.
type Profile struct {
	FullName  string    `json:"full_name"`
	Headline  string    `json:"headline,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Email     string    `json:"email,omitempty"`
	Location  string    `json:"location,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
