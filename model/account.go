package model

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// Account is the read-only projection of an account row.
type Account struct {
	LastName      string `json:"last_name" db:"last_name"`
	FirstName     string `json:"first_name" db:"first_name"`
	StreetAddress string `json:"street_address" db:"street_address"`
	Unit          *int16 `json:"unit" db:"unit"`
	City          string `json:"city" db:"city"`
	AccountState  string `json:"account_state" db:"account_state"`
	Zip           int32  `json:"zip" db:"zip"`
	Dob           Date   `json:"dob" db:"dob"`
	SSN           string `json:"ssn" db:"ssn"`
	EmailAddress  string `json:"email_address" db:"email_address"`
	MobileNumber  string `json:"mobile_number" db:"mobile_number"`
	AccountNumber int64  `json:"account_number" db:"account_number"`
}

// AccountFilter holds the optional account search criteria. A nil field is absent.
type AccountFilter struct {
	AccountNumber *int64     `json:"account_number,omitempty"`
	MobileNumber  *string    `json:"mobile_number,omitempty"`
	EmailAddress  *string    `json:"email_address,omitempty"`
	SSN           *string    `json:"ssn,omitempty"`
	Dob           *time.Time `json:"dob,omitempty"`
	Zip           *int32     `json:"zip,omitempty"`
	AccountState  *string    `json:"account_state,omitempty"`
	City          *string    `json:"city,omitempty"`
	Unit          *int16     `json:"unit,omitempty"`
	StreetAddress *string    `json:"street_address,omitempty"`
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Page          *int       `json:"page"`
}

func (f *AccountFilter) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Page, validation.NotNil, validation.Min(0), validation.Max(MaxPage)),
		validation.Field(&f.MobileNumber, validation.Length(0, 20), validation.Match(digitsOnly)),
		validation.Field(&f.SSN, validation.Length(0, 11), validation.Match(digitsOnly)),
		validation.Field(&f.AccountState, validation.Length(2, 2)),
		validation.Field(&f.EmailAddress, validation.Length(0, 255)),
		validation.Field(&f.City, validation.Length(0, 255)),
		validation.Field(&f.StreetAddress, validation.Length(0, 255)),
		validation.Field(&f.FirstName, validation.Length(0, 255)),
		validation.Field(&f.LastName, validation.Length(0, 255)),
	)
}
