package utils

import (
	"time"

	"github.com/prefeitura-rio/app-cnh/internal/models"
)

const (
	// InputDateLayout is the layout dates are submitted in (DD-MM-YYYY)
	InputDateLayout = "02-01-2006"
	// StoredDateLayout is the layout dates are stored in (DD/MM/YYYY)
	StoredDateLayout = "02/01/2006"
)

// FormatDate converts a DD-MM-YYYY date into DD/MM/YYYY.
// Days and months must be zero-padded and the year must have four digits.
func FormatDate(field, value string) (string, error) {
	t, err := time.Parse(InputDateLayout, value)
	if err != nil {
		return "", &models.FormatError{
			Field:  field,
			Value:  value,
			Layout: "DD-MM-AAAA",
			Err:    err,
		}
	}
	return t.Format(StoredDateLayout), nil
}
