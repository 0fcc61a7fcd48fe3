package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skillpassport/backend/internal/domain"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		confirm   string
		wantField string
	}{
		{"valid", "jane@example.com", "hunter22", "hunter22", ""},
		{"missing email", "", "hunter22", "hunter22", "email"},
		{"bad email", "not-an-email", "hunter22", "hunter22", "email"},
		{"missing password", "jane@example.com", "", "", "password"},
		{"short password", "jane@example.com", "abc", "abc", "password"},
		{"mismatch", "jane@example.com", "hunter22", "hunter23", "confirm_password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.email, tt.password, tt.confirm)
			if tt.wantField == "" {
				assert.False(t, errs.HasErrors())
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateCredential(t *testing.T) {
	errs := ValidateCredential("Technical Skill", "Go", "Gopher Academy", "2024-06-01")
	assert.False(t, errs.HasErrors())

	errs = ValidateCredential("", "", "", "")
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "issuer")
	assert.Contains(t, errs, "issue_date")

	errs = ValidateCredential("Astrology", "Go", "Gopher Academy", "01-06-2024")
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "issue_date")

	// Whitespace-only fields do not count as filled.
	errs = ValidateCredential("Technical Skill", "   ", "Gopher Academy", "2024-06-01")
	assert.Contains(t, errs, "name")
}

func TestValidateProfileUpdate(t *testing.T) {
	name := "Jane"
	linkedin := "https://linkedin.com/in/jane"
	themeID := "theme3"
	errs := ValidateProfileUpdate(domain.ProfileUpdate{Name: &name, LinkedInURL: &linkedin, Theme: &themeID})
	assert.False(t, errs.HasErrors())

	empty := "  "
	badURL := "ftp://example.com"
	badTheme := "neon"
	errs = ValidateProfileUpdate(domain.ProfileUpdate{Name: &empty, GitHubURL: &badURL, Theme: &badTheme})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "github_url")
	assert.Contains(t, errs, "theme")

	// Nil fields mean "leave untouched" and are never validated.
	errs = ValidateProfileUpdate(domain.ProfileUpdate{})
	assert.False(t, errs.HasErrors())

	// Clearing a URL with an empty string is allowed.
	blank := ""
	errs = ValidateProfileUpdate(domain.ProfileUpdate{LinkedInURL: &blank})
	assert.False(t, errs.HasErrors())
}

func TestValidateAvatarFile(t *testing.T) {
	assert.False(t, ValidateAvatarFile("image/png", 1024).HasErrors())
	assert.False(t, ValidateAvatarFile("image/jpeg", MaxAvatarSize).HasErrors())

	assert.Contains(t, ValidateAvatarFile("application/pdf", 1024), "file")
	assert.Contains(t, ValidateAvatarFile("image/png", MaxAvatarSize+1), "file")
	assert.Contains(t, ValidateAvatarFile("image/png", 0), "file")
}

func TestValidateEvidenceFile(t *testing.T) {
	assert.False(t, ValidateEvidenceFile("application/pdf", 1024).HasErrors())

	assert.Contains(t, ValidateEvidenceFile("image/png", 1024), "file")
	assert.Contains(t, ValidateEvidenceFile("application/pdf", MaxEvidenceSize+1), "file")
	assert.Contains(t, ValidateEvidenceFile("application/pdf", 0), "file")
}
