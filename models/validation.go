package models

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateWinePage checks the structural shape of a decoded page so bad
// payloads fail here instead of deep inside filtering or matching.
func ValidateWinePage(page *WinePage) error {
	if page == nil {
		return fmt.Errorf("%w: empty page body", ErrMalformedResponse)
	}
	if err := getValidator().Struct(page); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// ValidateFilterOptions checks a decoded filter-options catalog.
func ValidateFilterOptions(options *FilterOptions) error {
	if options == nil {
		return fmt.Errorf("%w: empty filter options body", ErrMalformedResponse)
	}
	if err := getValidator().Var(options.Vintage, "dive,gte=0"); err != nil {
		return fmt.Errorf("%w: vintage: %v", ErrMalformedResponse, err)
	}
	return nil
}
