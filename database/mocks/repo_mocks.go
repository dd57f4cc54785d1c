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
package mocks

import (
	"context"

	"github.com/blnkfinance/purchase-lookup/model"
	"github.com/stretchr/testify/mock"
)

// MockDataSource is a mock implementation of the IDataSource interface
type MockDataSource struct {
	mock.Mock
}

// Account methods

func (m *MockDataSource) LookupAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	args := m.Called(ctx, filter)
	accounts, _ := args.Get(0).([]model.Account)
	return accounts, args.Error(1)
}

// Purchase methods

func (m *MockDataSource) LookupPurchases(ctx context.Context, filter model.PurchaseFilter) (model.PurchasePage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(model.PurchasePage), args.Error(1)
}

// Health methods

func (m *MockDataSource) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
