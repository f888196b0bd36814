package transaction

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/boldbank-backend/internal/domain"
)

const maxDescriptionLength = 255

// CreateInput holds parameters for creating a transaction. Amount is the
// signed delta applied to the owner's balance.
type CreateInput struct {
	Amount      decimal.Decimal
	Description string
}

// Validate validates the create input against the configured maximum amount.
func (i CreateInput) Validate(maxAmount decimal.Decimal) error {
	var errs []domain.FieldError

	switch {
	case i.Amount.IsZero():
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must not be zero"})
	case !i.Amount.Equal(i.Amount.Truncate(2)):
		errs = append(errs, domain.FieldError{Field: "amount", Message: "at most 2 decimal places"})
	case i.Amount.Abs().GreaterThan(maxAmount):
		errs = append(errs, domain.FieldError{Field: "amount", Message: "exceeds maximum of " + maxAmount.StringFixed(2)})
	}

	if utf8.RuneCountInString(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

// DeclineInput holds options for declining a transaction.
type DeclineInput struct {
	// ForceSessionEnd additionally asks the owner's clients to log out.
	ForceSessionEnd bool
}
