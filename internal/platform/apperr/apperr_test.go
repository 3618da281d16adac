// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mhinfo/internal/platform/apperr"
)

/*
TestHasCode verifies that codes survive fmt.Errorf wrapping.
*/
func TestHasCode(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := fmt.Errorf("monster: parse mhw: %w", apperr.InvalidFormat("invalid dataset", cause))

	assert.True(t, apperr.IsAppError(err))
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidFormat))
	assert.False(t, apperr.HasCode(err, apperr.CodeNotReady))
	assert.ErrorIs(t, err, cause)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "invalid dataset: unexpected end of JSON input", ae.Error())
}

func TestAs_PlainError(t *testing.T) {
	assert.Nil(t, apperr.As(errors.New("boom")))
	assert.False(t, apperr.HasCode(nil, apperr.CodeInternal))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *apperr.AppError
		code string
		msg  string
	}{
		{"not_found", apperr.NotFound("Game"), apperr.CodeNotFound, "Game not found"},
		{"not_ready", apperr.NotReady("localization"), apperr.CodeNotReady, "localization is not ready"},
		{"catalog", apperr.InvalidCatalog("no games"), apperr.CodeInvalidCatalog, "no games"},
		{"validation", apperr.ValidationError("Validation failed"), apperr.CodeValidation, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}
