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

	"github.com/blnkfinance/purchase-lookup/model"
)

// IDataSource defines the interface for data source operations, grouping related functionalities.
type IDataSource interface {
	account  // Interface for account lookups
	purchase // Interface for purchase lookups
	health   // Interface for pool health checks
}

// account defines methods for looking up accounts.
type account interface {
	LookupAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) // Ranked, paginated account matches
}

// purchase defines methods for looking up purchases.
type purchase interface {
	LookupPurchases(ctx context.Context, filter model.PurchaseFilter) (model.PurchasePage, error) // Ranked purchase page with end-of-results flag
}

// health defines methods for checking the data source.
type health interface {
	Ping(ctx context.Context) error
}
