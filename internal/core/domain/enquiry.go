package domain

import (
	"time"

	"github.com/google/uuid"
)

type EnquiryKind string

const (
	EnquiryGeneral     EnquiryKind = "general"
	EnquiryAppraisal   EnquiryKind = "appraisal"
	EnquiryMaintenance EnquiryKind = "maintenance"
)

// Enquiry is one submitted lead-capture form.
type Enquiry struct {
	ID              uuid.UUID
	Kind            EnquiryKind
	Name            string
	Email           string
	Phone           string
	Message         string
	PropertyAddress string
	PropertyType    string
	ListingID       string
	SubmittedAt     time.Time
}
