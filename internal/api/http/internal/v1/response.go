package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func validationErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.JSON(http.StatusBadRequest, ValidationErrorStruct{
			ErrorCode:    6000,
			ErrorMessage: "Validation error",
			Errors:       out,
		})
		return
	}

	c.JSON(http.StatusBadRequest, ValidationErrorStruct{
		ErrorCode:    6000,
		ErrorMessage: "Validation error",
	})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "eqfield":
		return fmt.Sprintf("Must match the %v field", value)
	case "min":
		return fmt.Sprintf("Must be at least %v characters", value)
	case "max":
		return fmt.Sprintf("Must be at most %v characters", value)
	}
	return tag
}
