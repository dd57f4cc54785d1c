package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// PurchaseRow is a purchase as stored. Amounts keep arbitrary precision.
type PurchaseRow struct {
	AccountNumber        int64           `db:"account_number"`
	PurchaseDatetime     time.Time       `db:"purchase_datetime"`
	PurchaseAmount       decimal.Decimal `db:"purchase_amount"`
	PostDate             Date            `db:"post_date"`
	PurchaseNumber       int32           `db:"purchase_number"`
	MerchantNumber       string          `db:"merchant_number"`
	MerchantName         string          `db:"merchant_name"`
	MerchantState        string          `db:"merchant_state"`
	MerchantCategoryCode int16           `db:"merchant_category_code"`
}

// Purchase is the API projection of a purchase.
type Purchase struct {
	AccountNumber        int64     `json:"account_number"`
	PurchaseDatetime     time.Time `json:"purchase_datetime"`
	PurchaseAmount       string    `json:"purchase_amount"`
	PostDate             Date      `json:"post_date"`
	PurchaseNumber       int32     `json:"purchase_number"`
	MerchantNumber       string    `json:"merchant_number"`
	MerchantName         string    `json:"merchant_name"`
	MerchantState        string    `json:"merchant_state"`
	MerchantCategoryCode int16     `json:"merchant_category_code"`
}

// ToPurchase maps a stored row to its projection. The amount is rendered with
// exactly two decimal places without passing through a float.
func (r PurchaseRow) ToPurchase() Purchase {
	return Purchase{
		AccountNumber:        r.AccountNumber,
		PurchaseDatetime:     r.PurchaseDatetime,
		PurchaseAmount:       r.PurchaseAmount.StringFixed(2),
		PostDate:             r.PostDate,
		PurchaseNumber:       r.PurchaseNumber,
		MerchantNumber:       r.MerchantNumber,
		MerchantName:         r.MerchantName,
		MerchantState:        r.MerchantState,
		MerchantCategoryCode: r.MerchantCategoryCode,
	}
}

// PurchasePage is one page of purchases. Eof is true when no further page exists.
type PurchasePage struct {
	Eof       bool       `json:"eof"`
	Purchases []Purchase `json:"purchases"`
}

// PurchaseFilter holds the optional purchase search criteria. A nil field is absent.
type PurchaseFilter struct {
	AccountNumber        *int64           `json:"account_number,omitempty"`
	PurchaseDate         *time.Time       `json:"purchase_date,omitempty"`
	PurchaseTime         *time.Duration   `json:"purchase_time,omitempty"`
	PurchaseAmount       *decimal.Decimal `json:"purchase_amount,omitempty"`
	Outliers             *bool            `json:"outliers,omitempty"`
	Interstate           *bool            `json:"interstate,omitempty"`
	PostDate             *time.Time       `json:"post_date,omitempty"`
	PurchaseNumber       *int32           `json:"purchase_number,omitempty"`
	MerchantNumber       *string          `json:"merchant_number,omitempty"`
	MerchantName         *string          `json:"merchant_name,omitempty"`
	MerchantState        *string          `json:"merchant_state,omitempty"`
	MerchantCategoryCode *int16           `json:"merchant_category_code,omitempty"`
	Page                 *int             `json:"page"`

	// ProximityOrder lists proximity fields in the order the caller supplied them.
	ProximityOrder []string `json:"-"`
}

func (f *PurchaseFilter) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Page, validation.NotNil, validation.Min(0), validation.Max(MaxPage)),
		validation.Field(&f.MerchantState, validation.Length(2, 2)),
		validation.Field(&f.MerchantNumber, validation.Length(0, 255)),
		validation.Field(&f.MerchantName, validation.Length(0, 255)),
		validation.Field(&f.PurchaseTime, validation.By(func(value interface{}) error {
			d, ok := value.(*time.Duration)
			if !ok || d == nil {
				return nil
			}
			if *d < 0 || *d >= 24*time.Hour {
				return errors.New("must be a time of day")
			}
			return nil
		})),
	)
}
