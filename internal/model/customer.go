package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Customer is the domain entity managed by this service. IDs are opaque
// UUID strings assigned by the repository on create.
type Customer struct {
	ID        string    `db:"id" json:"id"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CustomerInput is the transfer object for create and update requests:
// the Customer shape minus identity and timestamps.
type CustomerInput struct {
	FirstName string `json:"first_name" validate:"required,notblank"`
	LastName  string `json:"last_name" validate:"required,notblank"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// "required" alone accepts whitespace-only strings.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Validate reports whether the input can be forwarded to the store.
func (in *CustomerInput) Validate() error {
	return validate.Struct(in)
}
