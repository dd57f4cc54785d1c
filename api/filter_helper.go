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

package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/blnkfinance/purchase-lookup/database"
	"github.com/blnkfinance/purchase-lookup/internal/apierror"
	"github.com/blnkfinance/purchase-lookup/internal/filter"
)

// proximityOrder returns the proximity fields of the purchase lookup in the
// order they appear in the raw query string.
//
// Parameters:
// - c: The gin context containing the request
//
// Returns:
// - []string: The proximity field names, first occurrence first
func proximityOrder(c *gin.Context) []string {
	return filter.ParseFieldOrder(c.Request.URL.RawQuery, database.PurchaseProximityFields)
}

// errorResponse is the body of every failed lookup.
type errorResponse struct {
	Code    apierror.ErrorCode `json:"code"`
	Error   string             `json:"error"`
	Details string             `json:"details,omitempty"`
}

// respondWithError writes the status mapped from err. Internal and storage
// errors do not expose their details to the caller.
func respondWithError(c *gin.Context, err error) {
	status := apierror.MapErrorToHTTPStatus(err)
	_ = c.Error(err)

	var apiErr apierror.APIError
	if !errors.As(err, &apiErr) {
		c.JSON(status, errorResponse{Code: apierror.ErrInternalServer, Error: "internal server error"})
		return
	}

	resp := errorResponse{Code: apiErr.Code, Error: apiErr.Message}
	if apiErr.Code == apierror.ErrInvalidInput || apiErr.Code == apierror.ErrBadRequest {
		if details, ok := apiErr.Details.(error); ok {
			resp.Details = details.Error()
		}
	}
	c.JSON(status, resp)
}
