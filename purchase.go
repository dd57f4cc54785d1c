package lookup

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/blnkfinance/purchase-lookup/internal/apierror"
	"github.com/blnkfinance/purchase-lookup/model"
)

// SearchPurchases validates the filter and returns one page of matching purchases
// together with the end-of-results flag.
func (l *Lookup) SearchPurchases(ctx context.Context, filter model.PurchaseFilter) (model.PurchasePage, error) {
	ctx, span := tracer.Start(ctx, "Searching purchases")
	defer span.End()

	if err := filter.Validate(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return model.PurchasePage{}, apierror.NewAPIError(apierror.ErrInvalidInput, "Invalid purchase filter", err)
	}

	page, err := l.datasource.LookupPurchases(ctx, filter)
	if err != nil {
		span.RecordError(err)
		return model.PurchasePage{}, err
	}
	if page.Purchases == nil {
		page.Purchases = []model.Purchase{}
	}

	span.SetAttributes(attribute.Bool("lookup.eof", page.Eof))
	return page, nil
}
