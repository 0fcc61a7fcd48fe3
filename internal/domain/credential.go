package domain

import (
	"time"

	"github.com/google/uuid"
)

type Credential struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Issuer      string    `json:"issuer"`
	IssueDate   time.Time `json:"issue_date"`
	EvidenceURL *string   `json:"evidence_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Verified reports whether the credential carries any evidence reference.
// This is a display status, not a cryptographic or third-party check.
func (c *Credential) Verified() bool {
	return c.EvidenceURL != nil && *c.EvidenceURL != ""
}

// CredentialTypes is the fixed set the wizard's first step offers.
var CredentialTypes = []string{
	"Professional Certification",
	"Technical Skill",
	"Project Work",
	"Work Experience",
	"Educational Achievement",
}

// PopularIssuers is the quick-pick list shown next to the issuer field.
var PopularIssuers = []string{"Google", "Microsoft", "AWS", "Meta"}

func IsCredentialType(t string) bool {
	for _, ct := range CredentialTypes {
		if ct == t {
			return true
		}
	}
	return false
}
