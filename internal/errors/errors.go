package apperrors

import "fmt"

// CustomerNotFoundError is returned when no customer exists for an ID.
type CustomerNotFoundError struct {
	CustomerID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer with ID %s not found", e.CustomerID)
}

// NewCustomerNotFound builds the not-found error for the given ID.
func NewCustomerNotFound(id string) error {
	return &CustomerNotFoundError{CustomerID: id}
}

// ValidationError is returned when request input fails validation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid customer info: %s", e.Reason)
}

// NewValidation wraps a validation failure reason.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}
