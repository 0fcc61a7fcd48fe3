package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/skillpassport/backend/internal/domain"
	"github.com/skillpassport/backend/internal/theme"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

const (
	MaxAvatarSize   = 2 * 1024 * 1024
	MaxEvidenceSize = 10 * 1024 * 1024
)

func ValidateRegister(email, password, confirmPassword string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	} else if password != confirmPassword {
		errs.Add("confirm_password", "Passwords do not match")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateCredential(credType, name, issuer, issueDate string) ValidationErrors {
	errs := make(ValidationErrors)

	if credType == "" {
		errs.Add("type", "Credential type is required")
	} else if !domain.IsCredentialType(credType) {
		errs.Add("type", "Unknown credential type")
	}

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Credential name is required")
	}
	if strings.TrimSpace(issuer) == "" {
		errs.Add("issuer", "Issuer is required")
	}

	if issueDate == "" {
		errs.Add("issue_date", "Issue date is required")
	} else if _, err := time.Parse("2006-01-02", issueDate); err != nil {
		errs.Add("issue_date", "Issue date must be YYYY-MM-DD")
	}

	return errs
}

func ValidateProfileUpdate(update domain.ProfileUpdate) ValidationErrors {
	errs := make(ValidationErrors)

	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		errs.Add("name", "Name cannot be empty")
	}
	if update.LinkedInURL != nil && *update.LinkedInURL != "" {
		validateURL(errs, "linkedin_url", *update.LinkedInURL)
	}
	if update.GitHubURL != nil && *update.GitHubURL != "" {
		validateURL(errs, "github_url", *update.GitHubURL)
	}
	if update.Theme != nil && !theme.IsValid(*update.Theme) {
		errs.Add("theme", "Unknown theme")
	}

	return errs
}

// ValidateAvatarFile enforces the image-only, 2 MB cap for profile photos.
func ValidateAvatarFile(contentType string, size int64) ValidationErrors {
	errs := make(ValidationErrors)

	if !strings.HasPrefix(contentType, "image/") {
		errs.Add("file", "Avatar must be an image")
	}
	if size <= 0 {
		errs.Add("file", "File is empty")
	} else if size > MaxAvatarSize {
		errs.Add("file", fmt.Sprintf("Image must be under %dMB", MaxAvatarSize/(1024*1024)))
	}

	return errs
}

// ValidateEvidenceFile enforces the PDF-only, 10 MB cap for certificates.
func ValidateEvidenceFile(contentType string, size int64) ValidationErrors {
	errs := make(ValidationErrors)

	if contentType != "application/pdf" {
		errs.Add("file", "Evidence must be a PDF")
	}
	if size <= 0 {
		errs.Add("file", "File is empty")
	} else if size > MaxEvidenceSize {
		errs.Add("file", fmt.Sprintf("PDF must be under %dMB", MaxEvidenceSize/(1024*1024)))
	}

	return errs
}

func validateURL(errs ValidationErrors, field, raw string) {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs.Add(field, "Must be a valid http(s) URL")
	}
}
