package delivery

import (
	"errors"
	"net/http"
	"strings"

	"pos_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {

	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrMenuItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidMenuItemID),
		errors.Is(err, domain.ErrMenuItemNameRequired),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidStock),
		errors.Is(err, domain.ErrInvalidDateRange):
		return http.StatusBadRequest
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "constraint violation") {
		return http.StatusBadRequest
	}

	// Anything else is the store boundary failing; surfaced unchanged as
	// an operation-failed condition.
	return http.StatusInternalServerError
}
