package models

import "time"

// Account is a registered shopper. The TRN (tax registration number,
// 000-000-000) is the unique identifier across the registry; ID is an
// internal handle. The password is stored as entered; hardening
// authentication is out of scope here.
type Account struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	DOB            string    `json:"dob"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	TRN            string    `json:"trn"`
	Password       string    `json:"password"`
	DateRegistered time.Time `json:"dateRegistered"`
}
