package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model2 "github.com/blnkfinance/purchase-lookup/api/model"
	"github.com/blnkfinance/purchase-lookup/internal/apierror"
)

// LookupAccounts accepts the filter as a form-encoded body or JSON.
func (a Api) LookupAccounts(c *gin.Context) {
	var req model2.AccountLookup
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, apierror.NewAPIError(apierror.ErrInvalidInput, "invalid account lookup", err))
		return
	}

	if err := req.ValidateAccountLookup(); err != nil {
		respondWithError(c, apierror.NewAPIError(apierror.ErrInvalidInput, "invalid account lookup", err))
		return
	}

	accounts, err := a.lookup.SearchAccounts(c.Request.Context(), req.ToAccountFilter())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}
