package model

// PurchaseLookup is the payload of a purchase lookup, bound from the query string.
type PurchaseLookup struct {
	AccountNumber        *int64  `json:"account_number" form:"account_number"`
	PurchaseDate         *string `json:"purchase_date" form:"purchase_date"`
	PurchaseTime         *string `json:"purchase_time" form:"purchase_time"`
	PurchaseAmount       *string `json:"purchase_amount" form:"purchase_amount"`
	Outliers             *bool   `json:"outliers" form:"outliers"`
	Interstate           *bool   `json:"interstate" form:"interstate"`
	PostDate             *string `json:"post_date" form:"post_date"`
	PurchaseNumber       *int32  `json:"purchase_number" form:"purchase_number"`
	MerchantNumber       *string `json:"merchant_number" form:"merchant_number"`
	MerchantName         *string `json:"merchant_name" form:"merchant_name"`
	MerchantState        *string `json:"merchant_state" form:"merchant_state"`
	MerchantCategoryCode *int16  `json:"merchant_category_code" form:"merchant_category_code"`
	Page                 *int    `json:"page" form:"page"`
}
