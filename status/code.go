package status

import "strconv"

// Code is a defined HTTP status code paired with its reason phrase.
// Values are only created by this package; the zero Code is never returned
// from a successful lookup.
type Code struct {
	code    int
	message string
}

func newCode(code int, message string) Code { return Code{code: code, message: message} }

// Int returns the numeric status code.
func (c Code) Int() int { return c.code }

// Message returns the canonical reason phrase, e.g. "Not Found".
func (c Code) Message() string { return c.message }

// Class returns the class the code belongs to.
func (c Code) Class() Class {
	class, _ := ClassOf(c.code)
	return class
}

// IsError reports whether the code is a 4xx or 5xx.
func (c Code) IsError() bool {
	class := c.Class()
	return class == ClientError || class == ServerError
}

// Err returns the code framed as an *Error for 4xx and 5xx codes and nil
// for every other class.
func (c Code) Err() error {
	if e, ok := NewError(c); ok {
		return e
	}
	return nil
}

func (c Code) String() string {
	return strconv.Itoa(c.code) + " " + c.message
}

// Informational (1xx).
var (
	Continue   = newCode(100, "Continue")
	Switching  = newCode(101, "Switching")
	Processing = newCode(102, "Processing")
	EarlyHints = newCode(103, "Early Hints")
)

// Success (2xx).
var (
	OK                          = newCode(200, "OK")
	Created                     = newCode(201, "Created")
	Accepted                    = newCode(202, "Accepted")
	NonAuthoritativeInformation = newCode(203, "Non-Authoritative Information")
	NoContent                   = newCode(204, "No Content")
	ResetContent                = newCode(205, "Reset Content")
	PartialContent              = newCode(206, "Partial Content")
	MultiStatus                 = newCode(207, "Multi-Status")
	AlreadyReported             = newCode(208, "Already Reported")
	IMUsed                      = newCode(226, "IM Used")
)

// Redirection (3xx).
var (
	MultipleChoices   = newCode(300, "Multiple Choices")
	MovedPermanently  = newCode(301, "Moved Permanently")
	Found             = newCode(302, "Found")
	SeeOther          = newCode(303, "See Other")
	NotModified       = newCode(304, "Not Modified")
	UseProxy          = newCode(305, "Use Proxy")
	TemporaryRedirect = newCode(307, "Temporary Redirect")
	PermanentRedirect = newCode(308, "Permanent Redirect")
)

// Client errors (4xx).
var (
	BadRequest                  = newCode(400, "Bad Request")
	Unauthorized                = newCode(401, "Unauthorized")
	PaymentRequired             = newCode(402, "Payment Required")
	Forbidden                   = newCode(403, "Forbidden")
	NotFound                    = newCode(404, "Not Found")
	MethodNotAllowed            = newCode(405, "Method Not Allowed")
	NotAcceptable               = newCode(406, "Not Acceptable")
	ProxyAuthentication         = newCode(407, "Proxy Authentication")
	RequestTimeout              = newCode(408, "Request Timeout")
	Conflict                    = newCode(409, "Conflict")
	Gone                        = newCode(410, "Gone")
	LengthRequired              = newCode(411, "Length Required")
	PreconditionFailed          = newCode(412, "Precondition Failed")
	PayloadTooLarge             = newCode(413, "Payload Too Large")
	URITooLong                  = newCode(414, "URI Too Long")
	UnsupportedMediaType        = newCode(415, "Unsupported Media Type")
	RangeNotSatisfiable         = newCode(416, "Range Not Satisfiable")
	ExpectationFailed           = newCode(417, "Expectation Failed")
	ImATeapot                   = newCode(418, "I’m a Teapot")
	MisdirectedRequest          = newCode(421, "Misdirected Request")
	UnprocessableEntity         = newCode(422, "Unprocessable Entity")
	Locked                      = newCode(423, "Locked")
	FailedDependency            = newCode(424, "Failed Dependency")
	TooEarly                    = newCode(425, "Too Early")
	UpgradeRequired             = newCode(426, "Upgrade Required")
	PreconditionRequired        = newCode(428, "Precondition Required")
	TooManyRequests             = newCode(429, "Too Many Requests")
	RequestHeaderFieldsTooLarge = newCode(431, "Request Header Fields Too Large")
	UnavailableForLegalReasons  = newCode(451, "Unavailable for Legal Reasons")
)

// Server errors (5xx).
var (
	InternalServerError           = newCode(500, "Internal Server Error")
	NotImplemented                = newCode(501, "Not Implemented")
	BadGateway                    = newCode(502, "Bad Gateway")
	ServiceUnavailable            = newCode(503, "Service Unavailable")
	GatewayTimeout                = newCode(504, "Gateway Timeout")
	HTTPVersionNotSupported       = newCode(505, "HTTP Version Not Supported")
	VariantAlsoNegotiable         = newCode(506, "Variant Also Negotiable")
	InsufficientStorage           = newCode(507, "Insufficient Storage")
	LoopDetected                  = newCode(508, "Loop Detected")
	NotExtended                   = newCode(510, "Not Extended")
	NetworkAuthenticationRequired = newCode(511, "Network Authentication Required")
)
