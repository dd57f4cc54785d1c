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
	"errors"

	"go.opentelemetry.io/otel"

	"github.com/blnkfinance/purchase-lookup/database"
)

var tracer = otel.Tracer("purchase.lookup")

// Lookup is the entry point of the service. Handlers call it and it calls the datasource.
type Lookup struct {
	datasource database.IDataSource
}

// NewLookup initializes a new instance of Lookup with the provided datasource.
//
// Parameters:
// - db database.IDataSource: The datasource the lookups run against.
//
// Returns:
// - *Lookup: A pointer to the newly created Lookup instance.
// - error: An error if no datasource was supplied.
func NewLookup(db database.IDataSource) (*Lookup, error) {
	if db == nil {
		return nil, errors.New("datasource is required")
	}
	return &Lookup{datasource: db}, nil
}

// Health reports whether the datasource is reachable.
func (l *Lookup) Health(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Checking datasource health")
	defer span.End()

	return l.datasource.Ping(ctx)
}
