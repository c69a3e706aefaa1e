package models

import "time"

// Report categories understood by the application. The set is open ended:
// unknown categories are stored as-is and classified by the client into a
// display bucket.
const (
	CategoryMissingPerson      = "missing_person"
	CategoryLostFound          = "lost_found"
	CategorySafetyAlert        = "safety_alert"
	CategorySuspiciousActivity = "suspicious_activity"
	CategoryInfrastructure     = "infrastructure"
	CategoryPublicServices     = "public_services"
	CategoryEnvironment        = "environment"
	CategoryTransportation     = "transportation"
	CategoryGeneral            = "general"
)

// Report statuses. Status is a free lifecycle label; these are the values
// the UI offers.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// OwnerSummary is the public projection of a report's owner embedded in
// list/get responses. Nil when the owning user has been deleted.
type OwnerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// Report is a community incident report. ContactInfo is only meaningful for
// safety-side reports, GovernmentResponse only for civic-side ones; Kind-based
// consumers treat the other as absent.
type Report struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	Category           string        `json:"category"`
	Location           string        `json:"location,omitempty"`
	City               string        `json:"city,omitempty"`
	Lat                *float64      `json:"lat,omitempty"`
	Lng                *float64      `json:"lng,omitempty"`
	ImageKey           string        `json:"imageKey,omitempty"`
	Status             string        `json:"status"`
	Priority           string        `json:"priority"`
	ContactInfo        string        `json:"contactInfo,omitempty"`
	GovernmentResponse string        `json:"governmentResponse,omitempty"`
	CreatedBy          string        `json:"createdBy"`
	CreatedAt          time.Time     `json:"createdAt"`
	Owner              *OwnerSummary `json:"user,omitempty"`
}
