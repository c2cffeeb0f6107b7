package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	UserID int64  `validate:"required,min=1"`
	Mode   string `validate:"oneof=KIDS TEEN ADULT AUTO"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateStruct(request{UserID: 1, Mode: "AUTO"}))

	err := ValidateStruct(request{Mode: "EXPERT"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: UserID, Tag: required")
	assert.Contains(t, err.Error(), "Field: Mode, Tag: oneof, Param: KIDS TEEN ADULT AUTO")

	err = ValidateStruct(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
