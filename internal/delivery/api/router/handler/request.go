// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/query"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate binds the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses the :id path parameter. An id that cannot exist reads as notFound.
func pathID(c echo.Context, notFound *domainerrors.BaseError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, notFound
	}

	return id, nil
}

// queryParams keeps the first value of every query parameter.
func queryParams(c echo.Context) query.Params {
	values := c.QueryParams()
	params := make(query.Params, len(values))
	for name, v := range values {
		if len(v) > 0 {
			params[name] = v[0]
		}
	}

	return params
}

func identityFrom(c echo.Context) (*entity.Identity, error) {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return nil, domainerrors.ErrMissingToken
	}

	return identity, nil
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
