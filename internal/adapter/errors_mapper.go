package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrBadGateway,
	http.StatusGatewayTimeout:      ErrBadGateway,
}

// mapHTTPError returns nil for a 2xx response and a sentinel-wrapped error
// carrying the provider's body otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	return statusError(resp.StatusCode(), string(resp.Body()))
}

func statusError(code int, body string) error {
	detail := strings.TrimSpace(body)

	sentinel, known := statusSentinels[code]
	if !known {
		if detail == "" {
			detail = http.StatusText(code)
		}
		return fmt.Errorf("http %d: %s", code, detail)
	}
	return fmt.Errorf("%w: %s", sentinel, detail)
}
