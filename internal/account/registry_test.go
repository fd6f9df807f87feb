package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ergoshop/internal/store"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func validInput() RegisterInput {
	return RegisterInput{
		FirstName:       "Dana",
		LastName:        "Reid",
		DOB:             "1990-05-10",
		Gender:          "Female",
		Phone:           "876-555-0101",
		Email:           "dana@example.com",
		TRN:             "123-456-789",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
	}
}

func newTestRegistry() (*Registry, store.Store, store.Store) {
	durable := store.NewMemoryStore()
	session := store.NewMemoryStore()
	r := NewRegistry(durable, session)
	r.now = func() time.Time { return testNow }
	return r, durable, session
}

func TestRegisterSuccess(t *testing.T) {
	r, _, _ := newTestRegistry()

	acct, err := r.Register(validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, acct.ID)
	assert.Equal(t, "123-456-789", acct.TRN)
	assert.Equal(t, testNow, acct.DateRegistered)

	accounts, err := r.List()
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterInput)
		field  string
	}{
		{"missing first name", func(in *RegisterInput) { in.FirstName = " " }, "firstName"},
		{"missing gender", func(in *RegisterInput) { in.Gender = "" }, "gender"},
		{"short password", func(in *RegisterInput) { in.Password = "short"; in.ConfirmPassword = "short" }, "password"},
		{"confirmation mismatch", func(in *RegisterInput) { in.ConfirmPassword = "different1" }, "confirmPassword"},
		{"bad trn format", func(in *RegisterInput) { in.TRN = "12-3456-789" }, "trn"},
		{"unparsable dob", func(in *RegisterInput) { in.DOB = "10/05/1990" }, "dob"},
		{"under 18", func(in *RegisterInput) { in.DOB = "2010-01-01" }, "dob"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _ := newTestRegistry()
			in := validInput()
			tc.mutate(&in)

			_, err := r.Register(in)
			var vErr ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tc.field, vErr.Field)

			accounts, err := r.List()
			require.NoError(t, err)
			assert.Empty(t, accounts, "failed registration must not write")
		})
	}
}

func TestRegisterExactly18IsAllowed(t *testing.T) {
	r, _, _ := newTestRegistry()
	in := validInput()
	in.DOB = "2008-09-01" // 18th birthday is today

	_, err := r.Register(in)
	require.NoError(t, err)
}

func TestRegisterDuplicateTRN(t *testing.T) {
	r, _, _ := newTestRegistry()

	_, err := r.Register(validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Email = "other@example.com"
	_, err = r.Register(dup)

	var vErr ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "trn", vErr.Field)

	accounts, err := r.List()
	require.NoError(t, err)
	assert.Len(t, accounts, 1, "rejected duplicate must not mutate the registry")
}

func TestLoginSuccessClearsCounter(t *testing.T) {
	r, _, session := newTestRegistry()
	in := validInput()
	_, err := r.Register(in)
	require.NoError(t, err)

	_, err = r.Login(in.TRN, "wrong-password")
	var credErr InvalidCredentialsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, 2, credErr.AttemptsRemaining)

	acct, err := r.Login(in.TRN, in.Password)
	require.NoError(t, err)
	assert.Equal(t, in.TRN, acct.TRN)

	var attempts int
	found, err := session.Get("loginAttempts_"+in.TRN, &attempts)
	require.NoError(t, err)
	assert.False(t, found, "success must clear the attempt counter")
}

func TestLoginLockoutAfterThreeFailures(t *testing.T) {
	r, _, _ := newTestRegistry()
	in := validInput()
	_, err := r.Register(in)
	require.NoError(t, err)

	_, err = r.Login(in.TRN, "wrong")
	var credErr InvalidCredentialsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, 2, credErr.AttemptsRemaining)

	_, err = r.Login(in.TRN, "wrong")
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, 1, credErr.AttemptsRemaining)

	_, err = r.Login(in.TRN, "wrong")
	assert.ErrorIs(t, err, ErrAccountLocked)

	// Fourth attempt with the correct password is still refused.
	_, err = r.Login(in.TRN, in.Password)
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLockSurvivesNewSessionButCountersDoNot(t *testing.T) {
	durable := store.NewMemoryStore()

	first := NewRegistry(durable, store.NewMemoryStore())
	first.now = func() time.Time { return testNow }
	in := validInput()
	_, err := first.Register(in)
	require.NoError(t, err)

	// Two failures: partial count, no lock.
	_, _ = first.Login(in.TRN, "wrong")
	_, _ = first.Login(in.TRN, "wrong")

	// A fresh session starts from a clean counter.
	second := NewRegistry(durable, store.NewMemoryStore())
	second.now = first.now
	_, err = second.Login(in.TRN, "wrong")
	var credErr InvalidCredentialsError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, 2, credErr.AttemptsRemaining, "partial counts must not carry over")

	// Lock in the second session; a third session still sees the lock.
	_, _ = second.Login(in.TRN, "wrong")
	_, err = second.Login(in.TRN, "wrong")
	require.ErrorIs(t, err, ErrAccountLocked)

	third := NewRegistry(durable, store.NewMemoryStore())
	third.now = first.now
	_, err = third.Login(in.TRN, in.Password)
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestLoginUnknownTRNCountsTowardLockout(t *testing.T) {
	r, _, _ := newTestRegistry()

	_, _ = r.Login("999-999-999", "whatever")
	_, _ = r.Login("999-999-999", "whatever")
	_, err := r.Login("999-999-999", "whatever")
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestResetPassword(t *testing.T) {
	r, _, _ := newTestRegistry()
	in := validInput()
	_, err := r.Register(in)
	require.NoError(t, err)

	assert.ErrorIs(t, r.ResetPassword("000-000-000", in.DOB, "newpassword1"), ErrAccountNotFound)
	assert.ErrorIs(t, r.ResetPassword(in.TRN, "1991-01-01", "newpassword1"), ErrVerificationFailed)
	assert.ErrorIs(t, r.ResetPassword(in.TRN, in.DOB, "short"), ErrPasswordTooShort)

	require.NoError(t, r.ResetPassword(in.TRN, in.DOB, "newpassword1"))

	_, err = r.Login(in.TRN, in.Password)
	require.Error(t, err, "old password must no longer work")

	acct, err := r.Login(in.TRN, "newpassword1")
	require.NoError(t, err)
	assert.Equal(t, in.TRN, acct.TRN)
}

func TestResetPasswordClearsLock(t *testing.T) {
	r, _, _ := newTestRegistry()
	in := validInput()
	_, err := r.Register(in)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, _ = r.Login(in.TRN, "wrong")
	}
	_, err = r.Login(in.TRN, in.Password)
	require.ErrorIs(t, err, ErrAccountLocked)

	require.NoError(t, r.ResetPassword(in.TRN, in.DOB, "newpassword1"))

	// First attempt with the new password succeeds.
	acct, err := r.Login(in.TRN, "newpassword1")
	require.NoError(t, err)
	assert.Equal(t, in.TRN, acct.TRN)
}

func TestAge(t *testing.T) {
	tests := []struct {
		dob  string
		want int
	}{
		{"1990-05-10", 36},
		{"2008-09-01", 18},
		{"2008-09-02", 17},
		{"2000-12-31", 25},
	}
	for _, tc := range tests {
		got, err := Age(tc.dob, testNow)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "dob %s", tc.dob)
	}

	_, err := Age("not-a-date", testNow)
	assert.Error(t, err)
}
