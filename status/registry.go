package status

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned by layers that must report a lookup miss as an
// error. Lookup and Message themselves report misses with a false flag.
var ErrUnknownCode = errors.New("status: unknown status code")

var byClass = map[Class][]Code{
	Informational: {Continue, Switching, Processing, EarlyHints},
	Success: {
		OK, Created, Accepted, NonAuthoritativeInformation, NoContent,
		ResetContent, PartialContent, MultiStatus, AlreadyReported, IMUsed,
	},
	Redirection: {
		MultipleChoices, MovedPermanently, Found, SeeOther, NotModified,
		UseProxy, TemporaryRedirect, PermanentRedirect,
	},
	ClientError: {
		BadRequest, Unauthorized, PaymentRequired, Forbidden, NotFound,
		MethodNotAllowed, NotAcceptable, ProxyAuthentication, RequestTimeout,
		Conflict, Gone, LengthRequired, PreconditionFailed, PayloadTooLarge,
		URITooLong, UnsupportedMediaType, RangeNotSatisfiable, ExpectationFailed,
		ImATeapot, MisdirectedRequest, UnprocessableEntity, Locked,
		FailedDependency, TooEarly, UpgradeRequired, PreconditionRequired,
		TooManyRequests, RequestHeaderFieldsTooLarge, UnavailableForLegalReasons,
	},
	ServerError: {
		InternalServerError, NotImplemented, BadGateway, ServiceUnavailable,
		GatewayTimeout, HTTPVersionNotSupported, VariantAlsoNegotiable,
		InsufficientStorage, LoopDetected, NotExtended, NetworkAuthenticationRequired,
	},
}

var webdav = []Code{
	Processing,
	MultiStatus,
	AlreadyReported,
	UnprocessableEntity,
	Locked,
	FailedDependency,
	InsufficientStorage,
	LoopDetected,
}

var experimental = []Code{PaymentRequired, TooEarly}

// index is keyed by numeric code; filled once by init and never written again.
var index map[int]Code

func init() {
	if err := validate(); err != nil {
		panic(err)
	}
	index = make(map[int]Code)
	for _, class := range classes {
		for _, c := range byClass[class] {
			index[c.code] = c
		}
	}
}

// validate checks that every code sits in its class range, that codes are
// unique across classes and that each class is declared in ascending order.
func validate() error {
	seen := make(map[int]Class)
	for _, class := range classes {
		prev := 0
		for _, c := range byClass[class] {
			if !class.Contains(c.code) {
				return fmt.Errorf("status: %d declared as %s", c.code, class)
			}
			if other, dup := seen[c.code]; dup {
				return fmt.Errorf("status: %d declared in both %s and %s", c.code, other, class)
			}
			if c.code <= prev {
				return fmt.Errorf("status: %s codes out of order at %d", class, c.code)
			}
			if c.message == "" {
				return fmt.Errorf("status: %d has no reason phrase", c.code)
			}
			seen[c.code] = class
			prev = c.code
		}
	}
	return nil
}

func clone(codes []Code) []Code {
	if codes == nil {
		return nil
	}
	return append([]Code(nil), codes...)
}

// InClass returns every defined code in the class in ascending order.
// An invalid class yields nil.
func InClass(class Class) []Code { return clone(byClass[class]) }

// InformationalCodes returns the 1xx codes.
func InformationalCodes() []Code { return InClass(Informational) }

// SuccessCodes returns the 2xx codes.
func SuccessCodes() []Code { return InClass(Success) }

// RedirectionCodes returns the 3xx codes.
func RedirectionCodes() []Code { return InClass(Redirection) }

// ClientErrorCodes returns the 4xx codes.
func ClientErrorCodes() []Code { return InClass(ClientError) }

// ServerErrorCodes returns the 5xx codes.
func ServerErrorCodes() []Code { return InClass(ServerError) }

// ErrorCodes returns every 4xx code followed by every 5xx code. Each half is
// ascending; the result as a whole is ordered by class, not by value.
func ErrorCodes() []Code {
	out := make([]Code, 0, len(byClass[ClientError])+len(byClass[ServerError]))
	out = append(out, byClass[ClientError]...)
	return append(out, byClass[ServerError]...)
}

// WebDAVCodes returns the codes introduced by the WebDAV extensions:
// 102, 207, 208, 422, 423, 424, 507, 508.
func WebDAVCodes() []Code { return clone(webdav) }

// ExperimentalCodes returns the codes marked provisional: 402 and 425.
func ExperimentalCodes() []Code { return clone(experimental) }

// All returns every defined code, class by class in ascending order.
func All() []Code {
	out := make([]Code, 0, len(index))
	for _, class := range classes {
		out = append(out, byClass[class]...)
	}
	return out
}

// Len returns the number of defined codes.
func Len() int { return len(index) }

// IsWebDAV reports whether c belongs to the WebDAV subset.
func IsWebDAV(c Code) bool { return contains(webdav, c) }

// IsExperimental reports whether c belongs to the experimental subset.
func IsExperimental(c Code) bool { return contains(experimental, c) }

func contains(codes []Code, c Code) bool {
	for _, x := range codes {
		if x == c {
			return true
		}
	}
	return false
}

// Lookup returns the defined status for code; ok is false when no class
// defines it. Codes are unique across classes, so a single index serves
// every class.
func Lookup(code int) (Code, bool) {
	c, ok := index[code]
	return c, ok
}

// Message returns the reason phrase for code. Unknown codes yield ("", false);
// no generic placeholder is substituted.
func Message(code int) (string, bool) {
	c, ok := Lookup(code)
	if !ok {
		return "", false
	}
	return c.message, true
}

// MustLookup is like Lookup but panics when code is not defined. It is meant
// for package-level declarations in callers.
func MustLookup(code int) Code {
	c, ok := Lookup(code)
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownCode, code))
	}
	return c
}
