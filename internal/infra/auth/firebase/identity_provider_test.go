package firebase

import (
	"testing"

	domainerrors "agriatoo/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

func TestMapSignInError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{name: "email not found", code: "EMAIL_NOT_FOUND", want: domainerrors.ErrEmailNotFound},
		{name: "invalid password", code: "INVALID_PASSWORD", want: domainerrors.ErrInvalidPassword},
		{name: "invalid login credentials", code: "INVALID_LOGIN_CREDENTIALS", want: domainerrors.ErrInvalidPassword},
		{name: "invalid email", code: "INVALID_EMAIL", want: domainerrors.ErrInvalidEmail},
		{name: "rate limited", code: "TOO_MANY_ATTEMPTS_TRY_LATER", want: domainerrors.ErrTooManyAttempts},
		{name: "rate limited with detail suffix", code: "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled.", want: domainerrors.ErrTooManyAttempts},
		{name: "disabled account", code: "USER_DISABLED", want: domainerrors.ErrAccountDisabled},
		{name: "unknown code falls back to invalid password", code: "SOMETHING_NEW", want: domainerrors.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapSignInError(tt.code), tt.want)
		})
	}
}
