package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

// shelf is the validation root; dive walks every record.
type shelf struct {
	Categories []Category `validate:"dive"`
	Books      []Book     `validate:"dive"`
}

var validate = validator.New()

// Validate checks every record against its struct tags. A failure is a
// validation ShelfError whose context maps each bad field, for example
// "Categories[2].Color", to a short reason.
func Validate(categories []Category, books []Book) error {
	err := validate.Struct(shelf{Categories: categories, Books: books})
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return shelferrors.NewInternalError(shelferrors.ErrCodeCatalogInvalid, "catalog validation failed", err)
	}

	se := shelferrors.NewValidationError(shelferrors.ErrCodeCatalogInvalid, "catalog is invalid").
		WithSource("catalog")
	for _, fe := range validationErrs {
		field := strings.TrimPrefix(fe.StructNamespace(), "shelf.")
		se.WithContext(field, friendlyMessage(fe))
	}

	return se
}

// ValidateDefaults validates the built-in tables.
func ValidateDefaults() error {
	return Validate(Categories(), Bestsellers())
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "hexcolor", "len":
		return "must be '#' followed by six hex digits"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return fmt.Sprintf("failed %q", e.Tag())
	}
}
