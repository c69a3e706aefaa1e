// Package form implements the report submission form: field state,
// pre-submit validation with field-preserving errors, payload normalization
// and profile-seeded reset.
package form

import (
	"strings"

	"github.com/shivtchandra/CivicWatch/internal/client/aggregate"
	"github.com/shivtchandra/CivicWatch/internal/client/api"
	"github.com/shivtchandra/CivicWatch/internal/client/models"
)

// FieldError names the violated field so the caller can highlight it without
// losing the entered value.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the full set of validation failures for one submit attempt.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Form holds the submission state. Title, Description, Location and Priority
// are always present; IssueType only applies to the safety and civic tabs;
// ContactPhone and ContactEmail only apply outside the civic tab.
type Form struct {
	Bucket aggregate.Bucket

	Title       string
	Description string
	Location    string
	City        string
	Lat         string
	Lng         string
	Priority    string
	ImageKey    string

	IssueType    string
	ContactPhone string
	ContactEmail string
}

// New builds an empty form for the given tab, seeding the contact fields
// from the profile.
func New(bucket aggregate.Bucket, profile *models.Profile) *Form {
	f := &Form{Bucket: bucket, Priority: "medium"}
	f.seed(profile)
	return f
}

func (f *Form) seed(profile *models.Profile) {
	if profile == nil {
		return
	}
	f.ContactEmail = profile.Email
	f.ContactPhone = profile.Phone
	f.City = profile.City
}

// Validate checks every constraint and reports all failures at once. Field
// values are never modified here; a failed submit keeps what the user typed.
func (f *Form) Validate() error {
	var errs Errors

	title := strings.TrimSpace(f.Title)
	if len(title) < 5 || len(title) > 100 {
		errs = append(errs, FieldError{"title", "must be between 5 and 100 characters"})
	}

	description := strings.TrimSpace(f.Description)
	if len(description) < 10 || len(description) > 1000 {
		errs = append(errs, FieldError{"description", "must be between 10 and 1000 characters"})
	}

	if location := strings.TrimSpace(f.Location); location != "" {
		if len(location) < 3 || len(location) > 200 {
			errs = append(errs, FieldError{"location", "must be between 3 and 200 characters"})
		}
	}

	switch f.Priority {
	case "", "low", "medium", "high":
	default:
		errs = append(errs, FieldError{"priority", "must be one of: low, medium, high"})
	}

	if f.Bucket != aggregate.BucketCivic {
		if phone := strings.TrimSpace(f.ContactPhone); phone != "" && digitCount(phone) < 7 {
			errs = append(errs, FieldError{"contactPhone", "must contain at least 7 digits"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// Category derives the wire category from the active tab plus, for the
// safety and civic tabs, the selected issue sub-type.
func (f *Form) Category() string {
	switch f.Bucket {
	case aggregate.BucketMissing:
		return "missing_person"
	case aggregate.BucketLostFound:
		return "lost_found"
	case aggregate.BucketSafety:
		if f.IssueType != "" {
			return f.IssueType
		}
		return "safety_alert"
	case aggregate.BucketCivic:
		if f.IssueType != "" {
			return f.IssueType
		}
		return "infrastructure"
	default:
		return "general"
	}
}

// Draft normalizes the form into the submission payload: trimmed strings,
// derived category, and contact info folded into one field for non-civic
// reports.
func (f *Form) Draft() *api.ReportDraft {
	priority := f.Priority
	if priority == "" {
		priority = "medium"
	}

	draft := &api.ReportDraft{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Category:    f.Category(),
		Location:    strings.TrimSpace(f.Location),
		City:        strings.TrimSpace(f.City),
		Lat:         strings.TrimSpace(f.Lat),
		Lng:         strings.TrimSpace(f.Lng),
		ImageKey:    f.ImageKey,
		Priority:    priority,
	}

	if f.Bucket != aggregate.BucketCivic {
		draft.ContactInfo = contactInfo(f.ContactPhone, f.ContactEmail)
	}

	return draft
}

func contactInfo(phone, email string) string {
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	switch {
	case phone != "" && email != "":
		return phone + " / " + email
	case phone != "":
		return phone
	default:
		return email
	}
}

// Reset clears the form back to defaults, re-seeding contact fields from the
// profile rather than leaving them blank.
func (f *Form) Reset(profile *models.Profile) {
	*f = Form{Bucket: f.Bucket, Priority: "medium"}
	f.seed(profile)
}
