package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shopcore/customer-service/internal/model"
)

func TestCustomerInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		input   model.CustomerInput
		wantErr bool
	}{
		{"valid", model.CustomerInput{FirstName: "Alice", LastName: "Smith"}, false},
		{"valid with profile", model.CustomerInput{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com", Phone: "+254700000001", Location: "Nairobi"}, false},
		{"empty first name", model.CustomerInput{FirstName: "", LastName: "Smith"}, true},
		{"empty last name", model.CustomerInput{FirstName: "Alice", LastName: ""}, true},
		{"whitespace first name", model.CustomerInput{FirstName: "   ", LastName: "Smith"}, true},
		{"whitespace last name", model.CustomerInput{FirstName: "Alice", LastName: "\t\n"}, true},
		{"bad email", model.CustomerInput{FirstName: "Alice", LastName: "Smith", Email: "not-an-email"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.input.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
