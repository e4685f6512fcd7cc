package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Lead is a contact-form submission captured for follow-up by an advisor.
type Lead struct {
	ReferenceID uuid.UUID `json:"reference_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Company     string    `json:"company,omitempty"`
	Service     string    `json:"service,omitempty"`
	Message     string    `json:"message"`
}

// NewLead assigns a reference ID to a submission.
func NewLead(name, email, message string) Lead {
	return Lead{
		ReferenceID: uuid.New(),
		Name:        name,
		Email:       email,
		Message:     message,
	}
}

// MissingFields returns the labels of required fields that are blank.
func (l Lead) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(l.Name) == "" {
		missing = append(missing, "Name")
	}
	if strings.TrimSpace(l.Email) == "" {
		missing = append(missing, "Email")
	}
	if strings.TrimSpace(l.Message) == "" {
		missing = append(missing, "Message")
	}
	return missing
}
