package message

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

const maxContentLength = 2000

// SendInput holds parameters for sending a message.
type SendInput struct {
	ToEmail string
	Content string
}

func (i *SendInput) normalize() {
	i.ToEmail = domain.NormalizeEmail(i.ToEmail)
	i.Content = strings.TrimSpace(i.Content)
}

// Validate validates the send input.
func (i SendInput) Validate() error {
	var errs []domain.FieldError

	if i.ToEmail == "" {
		errs = append(errs, domain.FieldError{Field: "toEmail", Message: "required"})
	}

	if i.Content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(i.Content) > maxContentLength {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects a conversation. With defaults to the requester.
type ListInput struct {
	User string
	With string
}

func (i *ListInput) normalize() {
	i.User = domain.NormalizeEmail(i.User)
	i.With = domain.NormalizeEmail(i.With)
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.User == "" {
		return domain.NewValidationError("user", "required")
	}
	return nil
}
