package linode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField indicates the API response did not contain a field the
// caller needs, such as a created resource's ID. The provisioning pipeline
// treats this as fatal.
var ErrMissingField = errors.New("response missing required field")

// APIError is a non-empty ERRORARRAY returned by the action API.
type APIError struct {
	Action   string
	Code     int
	Messages []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s failed (code %d): %s", e.Action, e.Code, strings.Join(e.Messages, "; "))
}

// IsAPIError reports whether err is (or wraps) an APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
