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

package lookup

import (
	"context"

	"go.opentelemetry.io/otel/codes"

	"github.com/blnkfinance/purchase-lookup/internal/apierror"
	"github.com/blnkfinance/purchase-lookup/model"
)

// SearchAccounts validates the filter and returns one page of matching accounts.
// An account number returns at most one account regardless of the other fields.
//
// Parameters:
// - ctx context.Context: The request context; cancelling it aborts the query.
// - filter model.AccountFilter: The optional criteria plus the page index.
//
// Returns:
// - []model.Account: The matching accounts, never nil.
// - error: An INVALID_INPUT error before any query runs, or the storage error.
func (l *Lookup) SearchAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	ctx, span := tracer.Start(ctx, "Searching accounts")
	defer span.End()

	if err := filter.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, apierror.NewAPIError(apierror.ErrInvalidInput, "Invalid account filter", err)
	}

	accounts, err := l.datasource.LookupAccounts(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	return accounts, nil
}
