package status

import (
	"fmt"
	"strconv"
)

// Error frames a 4xx or 5xx status as a Go error so applications can return
// it directly and match it with errors.Is.
type Error struct {
	Code Code
}

// NewError frames c as an error. It reports false for 1xx, 2xx and 3xx codes,
// which are not error conditions.
func NewError(c Code) (*Error, bool) {
	if !c.IsError() {
		return nil, false
	}
	return &Error{Code: c}, true
}

// ErrorFor looks up code and frames it as an error.
func ErrorFor(code int) (*Error, bool) {
	c, ok := Lookup(code)
	if !ok {
		return nil, false
	}
	return NewError(c)
}

// Error returns the end-user sentence, phrased for client or server faults.
// The phrase is wrapped in typographic quotes (U+201C, U+201D), not ASCII
// double quotes, e.g. An HTTP client error occurred: “Not Found”.
func (e *Error) Error() string {
	side := "client"
	if e.Code.Class() == ServerError {
		side = "server"
	}
	return fmt.Sprintf("An HTTP %s error occurred: “%s”.", side, e.Code.Message())
}

// Description returns the short combined form, e.g. "HTTP 404 Not Found".
func (e *Error) Description() string {
	return "HTTP " + strconv.Itoa(e.Code.Int()) + " " + e.Code.Message()
}

// StatusCode returns the numeric code.
func (e *Error) StatusCode() int { return e.Code.Int() }

// IsClientError reports whether the error is a 4xx.
func (e *Error) IsClientError() bool { return e.Code.Class() == ClientError }

// IsServerError reports whether the error is a 5xx.
func (e *Error) IsServerError() bool { return e.Code.Class() == ServerError }

// Temporary reports whether retrying the same request later may succeed.
func (e *Error) Temporary() bool {
	switch e.Code {
	case RequestTimeout, TooEarly, TooManyRequests, BadGateway, ServiceUnavailable, GatewayTimeout:
		return true
	}
	return false
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.Code == e.Code
}
