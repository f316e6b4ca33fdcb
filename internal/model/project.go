// Package model defines domain entities for the application.
package model

import "time"

// Project groups generated artifacts under a website or campaign.
// Goals are stored as a JSON array in SQLite.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	TargetAudience string    `json:"target_audience,omitempty"`
	Goals          []string  `json:"goals"`
	OwnerID        string    `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
