// internal/interfaces/http/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// bindJSON binds the request body into out and writes a 400 with
// field-level details when binding or validation fails. It returns false
// when the handler should stop.
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": validationDetails(err),
		})
		return false
	}
	return true
}

// validationDetails flattens validator errors into a field -> message map.
// Non-validator errors (malformed JSON, wrong field types) map to a single
// body entry.
func validationDetails(err error) map[string]string {
	details := map[string]string{}

	var verrs validatorv10.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		return details
	}

	details["body"] = err.Error()
	return details
}
