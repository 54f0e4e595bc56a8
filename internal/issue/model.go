package issue

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
)

// ValidStatus reports whether s is a member of the closed status set.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type LocationClass string

const (
	LocationUrban LocationClass = "Urban"
	LocationRural LocationClass = "Rural"
)

func ValidLocationClass(lc LocationClass) bool {
	switch lc {
	case LocationUrban, LocationRural:
		return true
	}
	return false
}

type Issue struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         string        `json:"location"`
	LocationClass    LocationClass `json:"locationType"`
	Category         string        `json:"category"`
	Subcategory      *string       `json:"subcategory,omitempty"`
	Status           Status        `json:"status"`
	ReportedBy       string        `json:"reportedBy"`
	ImageURL         string        `json:"imageUrl"`
	RepairedImageURL *string       `json:"repairedImageUrl,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

type CreateIssueParams struct {
	ReporterID    string
	Title         string
	Description   string
	Location      string
	LocationClass LocationClass
	Category      string
	Subcategory   *string
	ImageURL      string
}

// UpdateIssueParams carries a partial update: nil fields stay untouched.
type UpdateIssueParams struct {
	Status           *Status
	Notes            *string
	RepairedImageURL *string
}
