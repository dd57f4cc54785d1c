package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/blnkfinance/purchase-lookup/api/model"
	"github.com/blnkfinance/purchase-lookup/internal/apierror"
)

// LookupPurchases reads the filter from the query string. The order of the
// proximity parameters in the URL decides the order of the sort keys.
func (a Api) LookupPurchases(c *gin.Context) {
	var req model2.PurchaseLookup
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apierror.NewAPIError(apierror.ErrInvalidInput, "invalid purchase lookup", err))
		return
	}

	if err := req.ValidatePurchaseLookup(); err != nil {
		respondWithError(c, apierror.NewAPIError(apierror.ErrInvalidInput, "invalid purchase lookup", err))
		return
	}

	f := req.ToPurchaseFilter()
	f.ProximityOrder = proximityOrder(c)

	page, err := a.lookup.SearchPurchases(c.Request.Context(), f)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
