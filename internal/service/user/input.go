package user

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Email         *string
	Name          *string
	AccountNumber *string
	Phone         *string
	AvatarURL     *string
}

// normalize trims every provided field and lower-cases the email.
func (i UpdateProfileInput) normalize() UpdateProfileInput {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}

	out := UpdateProfileInput{
		Name:          trim(i.Name),
		AccountNumber: trim(i.AccountNumber),
		Phone:         trim(i.Phone),
		AvatarURL:     trim(i.AvatarURL),
	}
	if i.Email != nil {
		email := domain.NormalizeEmail(*i.Email)
		out.Email = &email
	}
	if out.Name != nil {
		name := domain.CompactSpaces(*out.Name)
		out.Name = &name
	}
	return out
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		if *i.Email == "" {
			errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
		} else if !domain.IsValidEmail(*i.Email) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if i.Name != nil && len(*i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.AccountNumber != nil && len(*i.AccountNumber) > 34 {
		errs = append(errs, domain.FieldError{Field: "accountNumber", Message: "too long"})
	}

	if i.Phone != nil && len(*i.Phone) > 32 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if i.AvatarURL != nil && *i.AvatarURL != "" {
		if len(*i.AvatarURL) > 512 {
			errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "too long"})
		} else if u, err := url.Parse(*i.AvatarURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "avatarUrl", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) changes() domain.ProfileChanges {
	return domain.ProfileChanges{
		Email:         i.Email,
		Name:          i.Name,
		AccountNumber: i.AccountNumber,
		Phone:         i.Phone,
		AvatarURL:     i.AvatarURL,
	}
}
