package model

// AccountLookup is the payload of an account lookup, bound from a form body or JSON.
type AccountLookup struct {
	AccountNumber *int64  `json:"account_number" form:"account_number"`
	MobileNumber  *string `json:"mobile_number" form:"mobile_number"`
	EmailAddress  *string `json:"email_address" form:"email_address"`
	SSN           *string `json:"ssn" form:"ssn"`
	Dob           *string `json:"dob" form:"dob"`
	Zip           *int32  `json:"zip" form:"zip"`
	AccountState  *string `json:"account_state" form:"account_state"`
	City          *string `json:"city" form:"city"`
	Unit          *int16  `json:"unit" form:"unit"`
	StreetAddress *string `json:"street_address" form:"street_address"`
	FirstName     *string `json:"first_name" form:"first_name"`
	LastName      *string `json:"last_name" form:"last_name"`
	Page          *int    `json:"page" form:"page"`
}
