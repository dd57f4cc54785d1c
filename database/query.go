package database

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/blnkfinance/purchase-lookup/internal/apierror"
	"github.com/blnkfinance/purchase-lookup/internal/filter"
)

// compile renders a plan for the datasource dialect and logs the statement text.
// Bound values are never logged.
func (d Datasource) compile(span trace.Span, entity string, plan filter.Plan) (filter.Statement, error) {
	stmt, err := filter.Compile(d.Dialect, plan)
	if err != nil {
		recordSpanError(span, err)
		return filter.Statement{}, apierror.NewAPIError(apierror.ErrInternalServer, "Failed to build "+entity+" lookup", err)
	}

	span.SetAttributes(
		attribute.String("db.system", d.Dialect.Name()),
		attribute.String("db.statement", stmt.Query),
		attribute.Bool("lookup.fast_path", stmt.FastPath),
		attribute.Int("lookup.limit", stmt.Window.Limit),
		attribute.Int("lookup.offset", stmt.Window.Offset),
	)
	logrus.WithFields(logrus.Fields{
		"entity":    entity,
		"query":     stmt.Query,
		"args":      len(stmt.Args),
		"fast_path": stmt.FastPath,
	}).Debug("compiled lookup")

	return stmt, nil
}

// selectRows runs one statement and scans every row into T.
func selectRows[T any](ctx context.Context, conn *sqlx.DB, stmt filter.Statement) ([]T, error) {
	rows, err := conn.QueryxContext(ctx, stmt.Query, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]T, 0)
	for rows.Next() {
		var row T
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// storageError classifies a failed round trip.
func storageError(message string, err error) error {
	if errors.Is(err, context.Canceled) {
		return apierror.NewAPIError(apierror.ErrRequestCanceled, "Lookup canceled", err)
	}
	return apierror.NewAPIError(apierror.ErrStorageFailure, message, err)
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func page(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
