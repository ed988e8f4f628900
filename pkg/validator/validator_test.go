package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=10"`
	Email        string `json:"email" validate:"omitempty,email"`
	DepartmentID *int64 `json:"departmentId" validate:"omitempty,gt=0"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()
	zero := int64(0)

	err := v.Validate(&sampleRequest{Name: "   ", Email: "nope", DepartmentID: &zero})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"name":         "name must not be blank",
		"email":        "email must be a valid email address",
		"departmentId": "departmentId must be greater than 0",
	}, v.FormatValidationErrors(err))
}

func TestValidate_Required(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{})
	require.Error(t, err)
	assert.Equal(t, "name is required", v.FormatValidationErrors(err)["name"])
}

func TestValidate_Valid(t *testing.T) {
	v := NewValidator()
	one := int64(1)

	assert.NoError(t, v.Validate(&sampleRequest{Name: "Cardiology", DepartmentID: &one}))
	assert.NoError(t, v.Validate(&sampleRequest{Name: "Neurology", Email: "a@b.co"}))
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(assert.AnError))
}
