package database

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/blnkfinance/purchase-lookup/internal/filter"
	"github.com/blnkfinance/purchase-lookup/model"
)

var purchaseColumns = []string{
	"p.account_number", "p.purchase_datetime", "p.purchase_amount", "p.post_date", "p.purchase_number",
	"p.merchant_number", "p.merchant_name", "p.merchant_state", "p.merchant_category_code",
}

const (
	outliersJoin   = "JOIN outliers o ON o.account_number = p.account_number AND o.purchase_number = p.purchase_number"
	interstateJoin = "JOIN account a ON a.account_number = p.account_number AND a.account_state <> p.merchant_state"
)

// PurchaseProximityFields are the purchase fields that rank by distance, by caller-facing name.
var PurchaseProximityFields = map[string]bool{
	"purchase_date":   true,
	"post_date":       true,
	"purchase_amount": true,
}

// purchasePlan translates a purchase filter into a compiler plan.
func purchasePlan(f model.PurchaseFilter, policy filter.OverFetch) filter.Plan {
	plan := filter.Plan{
		Table:      "purchase p",
		Columns:    purchaseColumns,
		Pagination: policy,
		Page:       page(f.Page),
		Joins: []filter.Join{
			{Name: "outliers", Clause: outliersJoin, When: f.Outliers},
			{Name: "interstate", Clause: interstateJoin, When: f.Interstate},
		},
	}

	var c conditions
	c = exact(c, "p.account_number", f.AccountNumber)
	c = exact(c, "p.purchase_number", f.PurchaseNumber)
	c = c.text("p.merchant_state", filter.MatchExact, f.MerchantState)
	c = exact(c, "p.merchant_category_code", f.MerchantCategoryCode)
	c = c.text("p.merchant_number", filter.MatchContains, f.MerchantNumber)
	c = c.text("p.merchant_name", filter.MatchContains, f.MerchantName)
	plan.Conditions = c

	ordering := filter.Ordering{
		Fallback:    []filter.OrderKey{{Expr: "p.purchase_datetime", Order: filter.SortDesc}},
		Tiebreak:    []filter.OrderKey{{Expr: "p.account_number", Order: filter.SortAsc}, {Expr: "p.purchase_number", Order: filter.SortAsc}},
		CallerOrder: f.ProximityOrder,
	}
	// A purchase time only refines a purchase date. On its own it is ignored.
	if f.PurchaseDate != nil {
		ordering.Proximity = append(ordering.Proximity, filter.Proximity{
			Field: "purchase_date", Column: "p.purchase_datetime", Kind: filter.DistanceSeconds,
			Target: filter.CombineDateTime(*f.PurchaseDate, f.PurchaseTime),
		})
	}
	if f.PostDate != nil {
		ordering.Proximity = append(ordering.Proximity, filter.Proximity{
			Field: "post_date", Column: "p.post_date", Kind: filter.DistanceDays, Target: *f.PostDate,
		})
	}
	if f.PurchaseAmount != nil {
		ordering.Proximity = append(ordering.Proximity, filter.Proximity{
			Field: "purchase_amount", Column: "p.purchase_amount", Kind: filter.DistanceAmount, Target: *f.PurchaseAmount,
		})
	} else if f.Outliers != nil && *f.Outliers {
		ordering.Extra = []filter.OrderKey{{Expr: "ABS(p.purchase_amount)", Order: filter.SortDesc}}
	}
	plan.Ordering = ordering

	return plan
}

// LookupPurchases returns one page of purchases matching the filter. The page
// over-fetches by one row to report whether another page exists.
func (d Datasource) LookupPurchases(ctx context.Context, f model.PurchaseFilter) (model.PurchasePage, error) {
	ctx, span := otel.Tracer("Lookup purchases").Start(ctx, "Querying purchases from db")
	defer span.End()

	policy := filter.OverFetch{Size: d.PageSize}
	stmt, err := d.compile(span, "purchase", purchasePlan(f, policy))
	if err != nil {
		return model.PurchasePage{}, err
	}

	rows, err := selectRows[model.PurchaseRow](ctx, d.Conn, stmt)
	if err != nil {
		recordSpanError(span, err)
		return model.PurchasePage{}, storageError("Failed to retrieve purchases", err)
	}

	rows, eof := filter.Trim(policy, rows)
	purchases := make([]model.Purchase, 0, len(rows))
	for _, row := range rows {
		purchases = append(purchases, row.ToPurchase())
	}

	span.SetAttributes(attribute.Bool("lookup.eof", eof), attribute.Int("lookup.rows", len(purchases)))
	return model.PurchasePage{Eof: eof, Purchases: purchases}, nil
}
