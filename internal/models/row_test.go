package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_Check(t *testing.T) {
	err := EventSchema.Check(Row{"name": "x", "slug": "x", "starts_at": "2026-01-01 00:00:00"})
	assert.NoError(t, err)

	err = AttendeeSchema.Check(Row{"email": "a@b.com", "zeta": 1, "alpha": 2})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 2)
	assert.Equal(t, "alpha", verr.Fields[0].Field)
	assert.Equal(t, "unsupported field: alpha; unsupported field: zeta", verr.Error())
}

func TestSchema_Allows(t *testing.T) {
	assert.True(t, AttendeeSchema.Allows("registered_at"))
	assert.False(t, AttendeeSchema.Allows("capacity"))
	assert.True(t, EventSchema.Allows("capacity"))
}

func TestErrors_Classification(t *testing.T) {
	assert.ErrorIs(t, ErrEventNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrAttendeeNotFound, ErrNotFound)
	assert.Equal(t, "event not found", ErrEventNotFound.Error())

	backendErr := &BackendError{Statement: "SELECT 1", Err: errors.New("boom")}
	assert.Equal(t, "backend: boom", backendErr.Error())
	assert.ErrorIs(t, backendErr, backendErr.Err)
}

func TestValidationError_MergeAndOrNil(t *testing.T) {
	var v ValidationError
	assert.Nil(t, v.OrNil())

	assert.True(t, v.Merge(NewValidationError("name", "name is required")))
	assert.False(t, v.Merge(errors.New("other")))
	assert.Error(t, v.OrNil())
	assert.Equal(t, "name is required", v.Error())
}
