package account

import (
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ergoshop/internal/models"
	"ergoshop/internal/store"
)

const (
	registrationsKey = "RegistrationData"
	lockedKey        = "LockedAccounts"

	minPasswordLength = 8
	minAge            = 18
	maxLoginAttempts  = 3

	dobLayout = "2006-01-02"
)

var trnPattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{3}$`)

// Registry holds registered accounts and the lockout state. The locked set is
// durable; the per-TRN failed-attempt counters live in the session store, so
// a partial failure count never survives into a new session while a lock
// does.
type Registry struct {
	mu      sync.Mutex
	durable store.Store
	session store.Store
	now     func() time.Time
}

func NewRegistry(durable, session store.Store) *Registry {
	return &Registry{durable: durable, session: session, now: time.Now}
}

type RegisterInput struct {
	FirstName       string
	LastName        string
	DOB             string
	Gender          string
	Phone           string
	Email           string
	TRN             string
	Password        string
	ConfirmPassword string
}

// Register validates the input and appends a new account. Any failed check
// returns a ValidationError and leaves the registry untouched.
func (r *Registry) Register(in RegisterInput) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	in.TRN = strings.TrimSpace(in.TRN)

	required := []struct{ field, value string }{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"dob", in.DOB},
		{"gender", in.Gender},
		{"phone", in.Phone},
		{"email", in.Email},
		{"trn", in.TRN},
		{"password", in.Password},
		{"confirmPassword", in.ConfirmPassword},
	}
	for _, f := range required {
		if f.value == "" {
			return models.Account{}, ValidationError{Field: f.field, Reason: "is required"}
		}
	}

	if len(in.Password) < minPasswordLength {
		return models.Account{}, ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}
	if in.Password != in.ConfirmPassword {
		return models.Account{}, ValidationError{Field: "confirmPassword", Reason: "does not match password"}
	}
	if !trnPattern.MatchString(in.TRN) {
		return models.Account{}, ValidationError{Field: "trn", Reason: "must be in the format 000-000-000"}
	}

	age, err := Age(in.DOB, r.now())
	if err != nil {
		return models.Account{}, ValidationError{Field: "dob", Reason: "must be a valid date (YYYY-MM-DD)"}
	}
	if age < minAge {
		return models.Account{}, ValidationError{Field: "dob", Reason: "registrant must be at least 18 years old"}
	}

	accounts, err := r.accounts()
	if err != nil {
		return models.Account{}, err
	}
	for _, a := range accounts {
		if a.TRN == in.TRN {
			return models.Account{}, ValidationError{Field: "trn", Reason: "is already registered"}
		}
	}

	acct := models.Account{
		ID:             uuid.NewString(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DOB:            in.DOB,
		Gender:         in.Gender,
		Phone:          in.Phone,
		Email:          in.Email,
		TRN:            in.TRN,
		Password:       in.Password,
		DateRegistered: r.now(),
	}

	accounts = append(accounts, acct)
	if err := r.durable.Put(registrationsKey, accounts); err != nil {
		return models.Account{}, err
	}

	log.Println("[ACCOUNT] [INFO] registered:", acct.TRN)
	return acct, nil
}

// Login authenticates a TRN/password pair. Three failures within one session
// lock the account durably; a locked account is refused up front, correct
// password or not.
func (r *Registry) Login(trn, password string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trn = strings.TrimSpace(trn)

	locked, err := r.lockedSet()
	if err != nil {
		return models.Account{}, err
	}
	if contains(locked, trn) {
		log.Println("[ACCOUNT] [ERROR] login refused, account locked:", trn)
		return models.Account{}, ErrAccountLocked
	}

	accounts, err := r.accounts()
	if err != nil {
		return models.Account{}, err
	}

	for _, a := range accounts {
		if a.TRN == trn && a.Password == password {
			if err := r.session.Delete(attemptsKey(trn)); err != nil {
				return models.Account{}, err
			}
			log.Println("[ACCOUNT] [INFO] login succeeded:", trn)
			return a, nil
		}
	}

	attempts, err := r.attempts(trn)
	if err != nil {
		return models.Account{}, err
	}
	attempts++
	if err := r.session.Put(attemptsKey(trn), attempts); err != nil {
		return models.Account{}, err
	}

	if attempts >= maxLoginAttempts {
		locked = append(locked, trn)
		if err := r.durable.Put(lockedKey, locked); err != nil {
			return models.Account{}, err
		}
		log.Println("[ACCOUNT] [ERROR] account locked after failed attempts:", trn)
		return models.Account{}, ErrAccountLocked
	}

	log.Printf("[ACCOUNT] [ERROR] login failed for %s, attempt %d of %d", trn, attempts, maxLoginAttempts)
	return models.Account{}, InvalidCredentialsError{AttemptsRemaining: maxLoginAttempts - attempts}
}

// ResetPassword overwrites the password after verifying the stored date of
// birth, and clears any lock on the account.
func (r *Registry) ResetPassword(trn, dob, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trn = strings.TrimSpace(trn)

	accounts, err := r.accounts()
	if err != nil {
		return err
	}

	idx := -1
	for i, a := range accounts {
		if a.TRN == trn {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrAccountNotFound
	}
	if accounts[idx].DOB != dob {
		return ErrVerificationFailed
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	accounts[idx].Password = newPassword
	if err := r.durable.Put(registrationsKey, accounts); err != nil {
		return err
	}

	locked, err := r.lockedSet()
	if err != nil {
		return err
	}
	remaining := locked[:0]
	for _, t := range locked {
		if t != trn {
			remaining = append(remaining, t)
		}
	}
	if err := r.durable.Put(lockedKey, remaining); err != nil {
		return err
	}

	log.Println("[ACCOUNT] [INFO] password reset:", trn)
	return nil
}

// List returns all registered accounts in registration order.
func (r *Registry) List() ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts()
}

// EndSession drops the transient attempt counter for a TRN, as a closed
// session would.
func (r *Registry) EndSession(trn string) error {
	return r.session.Delete(attemptsKey(trn))
}

// Age computes full years between a YYYY-MM-DD date of birth and now.
func Age(dob string, now time.Time) (int, error) {
	born, err := time.Parse(dobLayout, dob)
	if err != nil {
		return 0, err
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, nil
}

func (r *Registry) accounts() ([]models.Account, error) {
	var accounts []models.Account
	if _, err := r.durable.Get(registrationsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *Registry) lockedSet() ([]string, error) {
	var locked []string
	if _, err := r.durable.Get(lockedKey, &locked); err != nil {
		return nil, err
	}
	return locked, nil
}

func (r *Registry) attempts(trn string) (int, error) {
	var attempts int
	if _, err := r.session.Get(attemptsKey(trn), &attempts); err != nil {
		return 0, err
	}
	return attempts, nil
}

func attemptsKey(trn string) string {
	return "loginAttempts_" + trn
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}
