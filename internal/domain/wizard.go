package domain

import (
	"time"

	"github.com/google/uuid"
)

// WizardStep numbering follows the six screens of the credential flow:
// type, details, date, review, evidence note, document upload.
const (
	WizardStepType     = 1
	WizardStepDetails  = 2
	WizardStepDate     = 3
	WizardStepReview   = 4
	WizardStepEvidence = 5
	WizardStepUpload   = 6
)

// CredentialDraft is the server-held state of an in-progress credential
// wizard. It survives failed submissions so the user can retry without
// re-entering anything.
type CredentialDraft struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Step      int       `json:"step"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Issuer    string    `json:"issuer"`
	IssueDate string    `json:"issue_date"` // YYYY-MM-DD, empty until step 3
	Evidence  string    `json:"evidence"`   // optional URL entered in step 5
	// FileKey references a staged document in blob storage; set when the
	// user uploads a PDF in step 6, consumed at submit time.
	FileKey   string    `json:"file_key"`
	CreatedAt time.Time `json:"created_at"`
}
