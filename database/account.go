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

package database

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/blnkfinance/purchase-lookup/internal/filter"
	"github.com/blnkfinance/purchase-lookup/model"
)

var accountColumns = []string{
	"last_name", "first_name", "street_address", "unit", "city", "account_state",
	"zip", "dob", "ssn", "email_address", "mobile_number", "account_number",
}

// accountPlan translates an account filter into a compiler plan.
// An account number short-circuits every other field.
func accountPlan(f model.AccountFilter, pageSize int) filter.Plan {
	plan := filter.Plan{
		Table:      "account",
		Columns:    accountColumns,
		Pagination: filter.Plain{Size: pageSize},
		Page:       page(f.Page),
	}

	if f.AccountNumber != nil {
		plan.FastPath = &filter.Condition{Column: "account_number", Match: filter.MatchExact, Value: *f.AccountNumber}
		return plan
	}

	var c conditions
	c = exact(c, "zip", f.Zip)
	c = c.text("account_state", filter.MatchExact, f.AccountState)
	c = exact(c, "unit", f.Unit)
	c = c.text("mobile_number", filter.MatchPrefix, f.MobileNumber)
	c = c.text("ssn", filter.MatchPrefix, f.SSN)
	c = c.text("email_address", filter.MatchContains, f.EmailAddress)
	c = c.text("city", filter.MatchContains, f.City)
	c = c.text("street_address", filter.MatchContains, f.StreetAddress)
	c = c.text("first_name", filter.MatchContains, f.FirstName)
	c = c.text("last_name", filter.MatchContains, f.LastName)
	plan.Conditions = c

	plan.Ordering = filter.Ordering{
		Fallback: []filter.OrderKey{{Expr: "last_name", Order: filter.SortAsc}},
		Tiebreak: []filter.OrderKey{{Expr: "account_number", Order: filter.SortAsc}},
	}
	if f.Dob != nil {
		plan.Ordering.Proximity = []filter.Proximity{
			{Field: "dob", Column: "dob", Kind: filter.DistanceDays, Target: *f.Dob},
		}
	}

	return plan
}

// LookupAccounts returns one page of accounts matching the filter, nearest first.
func (d Datasource) LookupAccounts(ctx context.Context, f model.AccountFilter) ([]model.Account, error) {
	ctx, span := otel.Tracer("Lookup accounts").Start(ctx, "Querying accounts from db")
	defer span.End()

	stmt, err := d.compile(span, "account", accountPlan(f, d.PageSize))
	if err != nil {
		return nil, err
	}

	accounts, err := selectRows[model.Account](ctx, d.Conn, stmt)
	if err != nil {
		recordSpanError(span, err)
		return nil, storageError("Failed to retrieve accounts", err)
	}

	span.AddEvent("accounts retrieved")
	return accounts, nil
}
