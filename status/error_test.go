package status

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorDescriptions(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		wantDesc string
		wantErr  string
	}{
		{
			name:     "client",
			code:     NotFound,
			wantDesc: "HTTP 404 Not Found",
			wantErr:  "An HTTP client error occurred: “Not Found”.",
		},
		{
			name:     "teapot",
			code:     ImATeapot,
			wantDesc: "HTTP 418 I’m a Teapot",
			wantErr:  "An HTTP client error occurred: “I’m a Teapot”.",
		},
		{
			name:     "server",
			code:     BadGateway,
			wantDesc: "HTTP 502 Bad Gateway",
			wantErr:  "An HTTP server error occurred: “Bad Gateway”.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := NewError(tt.code)
			if !ok {
				t.Fatalf("NewError(%v) rejected an error code", tt.code)
			}
			if got := e.Description(); got != tt.wantDesc {
				t.Fatalf("Description = %q want %q", got, tt.wantDesc)
			}
			if got := e.Error(); got != tt.wantErr {
				t.Fatalf("Error = %q want %q", got, tt.wantErr)
			}
			if e.StatusCode() != tt.code.Int() {
				t.Fatalf("StatusCode = %d", e.StatusCode())
			}
		})
	}
}

func TestNewErrorRejectsNonErrorClasses(t *testing.T) {
	for _, c := range []Code{Continue, OK, NoContent, MovedPermanently, PermanentRedirect} {
		if e, ok := NewError(c); ok || e != nil {
			t.Fatalf("NewError(%v) should not frame a non-error code", c)
		}
		if err := c.Err(); err != nil {
			t.Fatalf("%v.Err() = %v, expected nil", c, err)
		}
	}
}

func TestErrorFor(t *testing.T) {
	e, ok := ErrorFor(503)
	if !ok || e.Code != ServiceUnavailable {
		t.Fatalf("ErrorFor(503) = %v, %v", e, ok)
	}
	if !e.IsServerError() || e.IsClientError() {
		t.Fatalf("503 should be a server error")
	}
	for _, code := range []int{200, 299, 600, -1} {
		if _, ok := ErrorFor(code); ok {
			t.Fatalf("ErrorFor(%d) should miss", code)
		}
	}
}

func TestErrorsIsMatchesCode(t *testing.T) {
	wrapped := fmt.Errorf("fetch user: %w", NotFound.Err())
	if !errors.Is(wrapped, NotFound.Err()) {
		t.Fatalf("expected errors.Is to match 404")
	}
	if errors.Is(wrapped, Gone.Err()) {
		t.Fatalf("404 should not match 410")
	}
	var se *Error
	if !errors.As(wrapped, &se) || se.Code != NotFound {
		t.Fatalf("errors.As did not recover *Error: %v", se)
	}
}

func TestTemporary(t *testing.T) {
	temporary := map[Code]bool{
		RequestTimeout:     true,
		TooEarly:           true,
		TooManyRequests:    true,
		BadGateway:         true,
		ServiceUnavailable: true,
		GatewayTimeout:     true,
	}
	for _, c := range ErrorCodes() {
		e, _ := NewError(c)
		if got := e.Temporary(); got != temporary[c] {
			t.Fatalf("%v Temporary = %v", c, got)
		}
	}
}
