package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	fieldTitle = "title"
	fieldID    = "id"
)

// ItemValidator checks item input coming from forms, the API and the CLI
type ItemValidator struct {
	validate *validator.Validate
}

// NewItemValidator creates a new item validator
func NewItemValidator() *ItemValidator {
	return &ItemValidator{
		validate: validator.New(),
	}
}

// ValidateTitle rejects the empty title. Whitespace-only titles are kept as typed.
func (iv *ItemValidator) ValidateTitle(title string) error {
	if err := iv.validate.Var(title, "required"); err != nil {
		validationError := NewValidationError()
		validationError.AddRequiredError(fieldTitle)
		return validationError
	}
	return nil
}

// ValidateItemID requires a positive identifier
func (iv *ItemValidator) ValidateItemID(id int64) error {
	if err := iv.validate.Var(id, "gt=0"); err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(fieldID, id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ParseItemID parses an identifier made of ASCII digits only and checks
// that it is positive. Signs, spaces and other notations are rejected.
func (iv *ItemValidator) ParseItemID(raw string) (int64, error) {
	if err := iv.validate.Var(raw, "required,number"); err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(fieldID, raw, "a decimal integer")
		return 0, validationError
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError(fieldID, raw, "a decimal integer")
		return 0, validationError
	}
	if err := iv.ValidateItemID(id); err != nil {
		return 0, err
	}
	return id, nil
}
