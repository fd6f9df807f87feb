package account

import (
	"errors"
	"fmt"
)

var (
	ErrAccountLocked      = errors.New("account is locked")
	ErrAccountNotFound    = errors.New("account not found")
	ErrVerificationFailed = errors.New("date of birth does not match our records")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", minPasswordLength)
)

// ValidationError reports one failed registration check.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// InvalidCredentialsError is returned on a failed login that did not lock the
// account; AttemptsRemaining counts down to the lockout.
type InvalidCredentialsError struct {
	AttemptsRemaining int
}

func (e InvalidCredentialsError) Error() string {
	return fmt.Sprintf("incorrect TRN or password, %d attempts remaining", e.AttemptsRemaining)
}
