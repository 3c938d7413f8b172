// File: internal/dto/http_error.go
package dto

import (
	"errors"
	"net/http"

	"coursehub/internal/apperr"

	"github.com/labstack/echo/v4"
)

// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message" example:"invalid form data"`
}

// APIError 領域錯誤的回應主體，detail 為雙語訊息
// swagger:model dto.APIError
type APIError struct {
	Detail apperr.Message `json:"detail"`
}

// DomainError 將領域錯誤映射到對應的狀態碼與雙語主體
// 未預期的錯誤一律折疊為 500，不洩漏內部細節
func DomainError(c echo.Context, err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return c.JSON(ae.Status, APIError{Detail: ae.Message})
	}
	return c.JSON(http.StatusInternalServerError, HTTPError{Message: "unexpected error"})
}
