/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/blnkfinance/purchase-lookup/internal/filter"
	"github.com/blnkfinance/purchase-lookup/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// blank reports whether an optional string is absent. Empty form fields count as absent.
func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// present returns nil for blank strings so they reach the filter as absent.
func present(s *string) *string {
	if blank(s) {
		return nil
	}
	return s
}

func validateDate(value interface{}) error {
	s, ok := value.(*string)
	if !ok || blank(s) {
		return nil
	}
	if _, err := filter.ParseDate(*s); err != nil {
		return errors.New("please format the date as 'YYYY-MM-DD' (e.g., 2024-04-22)")
	}
	return nil
}

func validateTimeOfDay(value interface{}) error {
	s, ok := value.(*string)
	if !ok || blank(s) {
		return nil
	}
	if _, err := filter.ParseTimeOfDay(*s); err != nil {
		return errors.New("please format the time as 'HH:MM:SS' (e.g., 15:28:03)")
	}
	return nil
}

func validateAmount(value interface{}) error {
	s, ok := value.(*string)
	if !ok || blank(s) {
		return nil
	}
	if _, err := decimal.NewFromString(*s); err != nil {
		return errors.New("must be a decimal amount (e.g., 19.50)")
	}
	return nil
}

func (a *AccountLookup) ValidateAccountLookup() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Page, validation.NotNil.Error("page is required"), validation.Min(0), validation.Max(model.MaxPage)),
		validation.Field(&a.Dob, validation.By(validateDate)),
	)
}

func (p *PurchaseLookup) ValidatePurchaseLookup() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Page, validation.NotNil.Error("page is required"), validation.Min(0), validation.Max(model.MaxPage)),
		validation.Field(&p.PurchaseDate, validation.By(validateDate)),
		validation.Field(&p.PostDate, validation.By(validateDate)),
		validation.Field(&p.PurchaseTime, validation.By(validateTimeOfDay)),
		validation.Field(&p.PurchaseAmount, validation.By(validateAmount)),
	)
}

func parseDate(value *string) *time.Time {
	if blank(value) {
		return nil
	}
	t, err := filter.ParseDate(*value)
	if err != nil {
		logrus.Error(err)
		return nil
	}
	return &t
}

func (a *AccountLookup) ToAccountFilter() model.AccountFilter {
	return model.AccountFilter{
		AccountNumber: a.AccountNumber,
		MobileNumber:  present(a.MobileNumber),
		EmailAddress:  present(a.EmailAddress),
		SSN:           present(a.SSN),
		Dob:           parseDate(a.Dob),
		Zip:           a.Zip,
		AccountState:  present(a.AccountState),
		City:          present(a.City),
		Unit:          a.Unit,
		StreetAddress: present(a.StreetAddress),
		FirstName:     present(a.FirstName),
		LastName:      present(a.LastName),
		Page:          a.Page,
	}
}

func (p *PurchaseLookup) ToPurchaseFilter() model.PurchaseFilter {
	f := model.PurchaseFilter{
		AccountNumber:        p.AccountNumber,
		PurchaseDate:         parseDate(p.PurchaseDate),
		PostDate:             parseDate(p.PostDate),
		Outliers:             p.Outliers,
		Interstate:           p.Interstate,
		PurchaseNumber:       p.PurchaseNumber,
		MerchantNumber:       present(p.MerchantNumber),
		MerchantName:         present(p.MerchantName),
		MerchantState:        present(p.MerchantState),
		MerchantCategoryCode: p.MerchantCategoryCode,
		Page:                 p.Page,
	}

	if !blank(p.PurchaseTime) {
		tod, err := filter.ParseTimeOfDay(*p.PurchaseTime)
		if err != nil {
			logrus.Error(err)
		} else {
			f.PurchaseTime = &tod
		}
	}

	if !blank(p.PurchaseAmount) {
		amount, err := decimal.NewFromString(*p.PurchaseAmount)
		if err != nil {
			logrus.Error(err)
		} else {
			f.PurchaseAmount = &amount
		}
	}

	return f
}
