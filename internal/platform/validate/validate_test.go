// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prashant-2204/glassstream/internal/platform/apperr"
	"github.com/prashant-2204/glassstream/internal/platform/validate"
)

/*
TestValidator_Required verifies whitespace-only values count as empty.
*/
func TestValidator_Required(t *testing.T) {
	v := &validate.Validator{}
	err := v.Required("content", "  ").Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.KindValidation, appError.Kind)
	assert.Equal(t, "content", appError.Details[0].Field)
}

func TestValidator_MaxLen(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.MaxLen("username", "prashant", 64).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MaxLen("username", "aaaa", 3).Err())
}

func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"https", "https://cdn.example.com/avatar.png", true},
		{"empty passes", "", true},
		{"relative", "/avatar.png", false},
		{"scheme only", "ftp://example.com/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			err := v.URL("profilePicture", tt.value).Err()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

/*
TestValidator_Chaining verifies multiple failures accumulate into one error.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	err := v.
		Required("username", "").
		Custom("movieId", true, "Must be positive").
		Err()

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Len(t, appError.Details, 2)
	assert.True(t, v.HasErrors())
}
