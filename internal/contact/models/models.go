package models

import (
	"strings"
	"unicode/utf8"

	dErrors "portfolio/pkg/domain-errors"
	"portfolio/pkg/email"
)

const (
	DefaultTopic     = "General"
	MaxMessageLength = 5000
	MaxFieldLength   = 200

	SuccessMessage     = "Thanks! Your message has been sent."
	FailureMessage     = "Something went wrong sending your message. Please try again later."
	UnavailableMessage = "The contact form is temporarily unavailable. Please reach out on LinkedIn."
)

// Submission is one contact form post. Field names follow the form inputs.
type Submission struct {
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Topic    string `json:"topic"`
	Message  string `json:"message"`
	Subject  string `json:"subject"`
	Botcheck string `json:"botcheck"`
}

// Sanitize trims every field and fills the defaults.
func (s *Submission) Sanitize() {
	s.Name = strings.TrimSpace(s.Name)
	s.LastName = strings.TrimSpace(s.LastName)
	s.Email = strings.TrimSpace(s.Email)
	s.Topic = strings.TrimSpace(s.Topic)
	s.Message = strings.TrimSpace(s.Message)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Botcheck = strings.TrimSpace(s.Botcheck)

	if s.Topic == "" {
		s.Topic = DefaultTopic
	}
	if s.Subject == "" {
		s.Subject = "New portfolio inquiry: " + s.Topic
	}
	if s.Name == "" && s.LastName == "" {
		s.Name, s.LastName = email.DeriveNameFromEmail(s.Email)
	}
}

// IsBot reports whether the hidden honeypot field was filled in.
func (s *Submission) IsBot() bool {
	return s.Botcheck != ""
}

// Validate checks a sanitized submission.
func (s *Submission) Validate() error {
	if s.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	normalized, ok := email.Normalize(s.Email)
	if !ok {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	s.Email = normalized
	if s.Message == "" {
		return dErrors.New(dErrors.CodeValidation, "message is required")
	}
	if utf8.RuneCountInString(s.Message) > MaxMessageLength {
		return dErrors.New(dErrors.CodeValidation, "message is too long")
	}
	for _, f := range []string{s.Name, s.LastName, s.Topic, s.Subject} {
		if utf8.RuneCountInString(f) > MaxFieldLength {
			return dErrors.New(dErrors.CodeValidation, "field is too long")
		}
	}
	return nil
}

// Response is returned to the form script.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference,omitempty"`
	Error     string `json:"error,omitempty"`
}

// UpstreamResponse is the form relay's reply body.
type UpstreamResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
