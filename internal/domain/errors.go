// backend-go/internal/domain/errors.go
package domain

import (
	"fmt"
	"strings"
)

// MissingColumnError reports that no recognized column was found for a
// required signal. Candidates is the ordered name list that was tried.
type MissingColumnError struct {
	Kind       string
	Candidates []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("no %s column found, expected one of: %s",
		e.Kind, strings.Join(e.Candidates, ", "))
}

// EmptyDemandError reports that the demand column exists but holds no usable
// values for the selected product.
type EmptyDemandError struct {
	Column string
}

func (e *EmptyDemandError) Error() string {
	return fmt.Sprintf("demand column %q has no usable values", e.Column)
}

// InvalidParameterError reports a SimParams field that violates its
// constraint.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// ProductNotFoundError reports an ASIN absent from the loaded dataset.
type ProductNotFoundError struct {
	ASIN string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found in dataset", e.ASIN)
}
