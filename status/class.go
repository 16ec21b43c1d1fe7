package status

import "strings"

// Class groups status codes by their leading digit.
type Class int

const (
	Informational Class = iota + 1
	Success
	Redirection
	ClientError
	ServerError
)

// classes lists every Class in lookup priority order.
var classes = []Class{Informational, Success, Redirection, ClientError, ServerError}

// Classes returns every status class in ascending order.
func Classes() []Class {
	return append([]Class(nil), classes...)
}

func (c Class) String() string {
	switch c {
	case Informational:
		return "informational"
	case Success:
		return "success"
	case Redirection:
		return "redirection"
	case ClientError:
		return "client error"
	case ServerError:
		return "server error"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the five defined classes.
func (c Class) Valid() bool { return c >= Informational && c <= ServerError }

// Range returns the inclusive numeric range reserved for the class.
// Invalid classes return (0, 0).
func (c Class) Range() (lo, hi int) {
	if !c.Valid() {
		return 0, 0
	}
	lo = int(c) * 100
	return lo, lo + 99
}

// Contains reports whether code falls inside the class range.
func (c Class) Contains(code int) bool {
	lo, hi := c.Range()
	return lo != 0 && code >= lo && code <= hi
}

// ClassOf classifies any integer in 100-599 by range, whether or not the
// code itself is defined in the registry.
func ClassOf(code int) (Class, bool) {
	if code < 100 || code > 599 {
		return 0, false
	}
	return Class(code / 100), true
}

// ParseClass accepts the names returned by Class.String as well as the
// short forms "1xx" through "5xx". Matching is case-insensitive.
func ParseClass(s string) (Class, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range classes {
		if s == c.String() || s == c.short() {
			return c, true
		}
	}
	switch s {
	case "client_error", "clienterror":
		return ClientError, true
	case "server_error", "servererror":
		return ServerError, true
	}
	return 0, false
}

func (c Class) short() string {
	if !c.Valid() {
		return ""
	}
	return string(rune('0'+int(c))) + "xx"
}
