package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Echo adapts go-playground/validator to echo's Validator interface.
type Echo struct {
	validate *validator.Validate
}

func New() *Echo {
	return &Echo{validate: validator.New()}
}

func (v *Echo) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
