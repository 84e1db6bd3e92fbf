package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Global validator instance for reuse
var validate = newValidator()

// ErrInvalidRequestBody is returned by DecodeJSON when the body is missing
// or is not valid JSON for the target type.
var ErrInvalidRequestBody = errors.New("invalid request body")

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("%w: empty body", ErrInvalidRequestBody)
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidRequestBody)
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequestBody, err)
	}
	return nil
}

// ValidateRequest validates the given struct using its validate tags.
// Rule violations are returned as a *ValidationError.
func ValidateRequest(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return toValidationError(err)
	}
	return nil
}
