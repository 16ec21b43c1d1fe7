package status

import (
	"sync"
	"testing"
)

func ints(codes []Code) []int {
	out := make([]int, len(codes))
	for i, c := range codes {
		out[i] = c.Int()
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLookupDefinedCodes(t *testing.T) {
	all := All()
	if len(all) != Len() {
		t.Fatalf("All returned %d codes, Len reports %d", len(all), Len())
	}
	if len(all) != 62 {
		t.Fatalf("expected 62 defined codes got %d", len(all))
	}
	for _, want := range all {
		got, ok := Lookup(want.Int())
		if !ok {
			t.Fatalf("Lookup(%d) not found", want.Int())
		}
		if got != want || got.Int() != want.Int() {
			t.Fatalf("Lookup(%d) = %v want %v", want.Int(), got, want)
		}
		if got.Message() == "" {
			t.Fatalf("Lookup(%d) has empty message", want.Int())
		}
	}
}

func TestLookupUnknownCodes(t *testing.T) {
	for _, code := range []int{-1, 0, 1, 99, 104, 299, 306, 418 + 1, 499, 509, 599, 600, 1000} {
		if c, ok := Lookup(code); ok {
			t.Fatalf("Lookup(%d) = %v, expected not found", code, c)
		}
		if msg, ok := Message(code); ok || msg != "" {
			t.Fatalf("Message(%d) = %q, %v; expected empty miss", code, msg, ok)
		}
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{200, "OK"},
		{404, "Not Found"},
		{418, "I’m a Teapot"},
		{500, "Internal Server Error"},
		{308, "Permanent Redirect"},
		{101, "Switching"},
		{407, "Proxy Authentication"},
		{451, "Unavailable for Legal Reasons"},
		{506, "Variant Also Negotiable"},
	}
	for _, tt := range tests {
		got, ok := Message(tt.code)
		if !ok {
			t.Fatalf("Message(%d) not found", tt.code)
		}
		if got != tt.want {
			t.Fatalf("Message(%d) = %q want %q", tt.code, got, tt.want)
		}
	}
}

func TestTeapotApostropheBytes(t *testing.T) {
	want := []byte{'I', 0xE2, 0x80, 0x99, 'm', ' ', 'a', ' ', 'T', 'e', 'a', 'p', 'o', 't'}
	if got := []byte(ImATeapot.Message()); string(got) != string(want) {
		t.Fatalf("unexpected teapot bytes: % x", got)
	}
}

func TestClassSequences(t *testing.T) {
	tests := []struct {
		name string
		got  []Code
		want []int
	}{
		{"informational", InformationalCodes(), []int{100, 101, 102, 103}},
		{"success", SuccessCodes(), []int{200, 201, 202, 203, 204, 205, 206, 207, 208, 226}},
		{"redirection", RedirectionCodes(), []int{300, 301, 302, 303, 304, 305, 307, 308}},
		{"server error", ServerErrorCodes(), []int{500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511}},
		{"webdav", WebDAVCodes(), []int{102, 207, 208, 422, 423, 424, 507, 508}},
		{"experimental", ExperimentalCodes(), []int{402, 425}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ints(tt.got); !equalInts(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestInClassAscending(t *testing.T) {
	for _, class := range Classes() {
		codes := InClass(class)
		if len(codes) == 0 {
			t.Fatalf("%s has no codes", class)
		}
		for i, c := range codes {
			if c.Class() != class || !class.Contains(c.Int()) {
				t.Fatalf("%d listed under %s", c.Int(), class)
			}
			if i > 0 && codes[i-1].Int() >= c.Int() {
				t.Fatalf("%s not ascending at %d", class, c.Int())
			}
		}
	}
	if got := InClass(Class(9)); got != nil {
		t.Fatalf("expected nil for invalid class got %v", got)
	}
}

func TestErrorCodesOrdering(t *testing.T) {
	errs := ErrorCodes()
	nClient := len(ClientErrorCodes())
	nServer := len(ServerErrorCodes())
	if len(errs) != nClient+nServer {
		t.Fatalf("expected %d error codes got %d", nClient+nServer, len(errs))
	}
	for i, c := range errs {
		if i < nClient && (c.Int() < 400 || c.Int() > 499) {
			t.Fatalf("position %d holds %d, expected 4xx", i, c.Int())
		}
		if i >= nClient && (c.Int() < 500 || c.Int() > 599) {
			t.Fatalf("position %d holds %d, expected 5xx", i, c.Int())
		}
	}
	if errs[0] != BadRequest || errs[nClient] != InternalServerError {
		t.Fatalf("unexpected boundaries: %v, %v", errs[0], errs[nClient])
	}
}

func TestUniqueAcrossClasses(t *testing.T) {
	seen := make(map[int]Class)
	for _, class := range Classes() {
		for _, c := range InClass(class) {
			if other, dup := seen[c.Int()]; dup {
				t.Fatalf("%d defined in %s and %s", c.Int(), other, class)
			}
			seen[c.Int()] = class
		}
	}
	if err := validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	codes := WebDAVCodes()
	codes[0] = OK
	if WebDAVCodes()[0] != Processing {
		t.Fatalf("WebDAVCodes shares backing storage with caller")
	}
	errs := ErrorCodes()
	errs[0] = OK
	if ClientErrorCodes()[0] != BadRequest {
		t.Fatalf("ErrorCodes shares backing storage with caller")
	}
}

func TestSubsetMembership(t *testing.T) {
	if !IsWebDAV(Locked) || IsWebDAV(NotFound) {
		t.Fatalf("unexpected WebDAV membership")
	}
	if !IsExperimental(TooEarly) || IsExperimental(Locked) {
		t.Fatalf("unexpected experimental membership")
	}
	for _, c := range append(WebDAVCodes(), ExperimentalCodes()...) {
		if got, ok := Lookup(c.Int()); !ok || got != c {
			t.Fatalf("subset code %d not canonical", c.Int())
		}
	}
}

func TestMustLookup(t *testing.T) {
	if got := MustLookup(404); got != NotFound {
		t.Fatalf("MustLookup(404) = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown code")
		}
	}()
	MustLookup(299)
}

func TestConcurrentLookupsAreStable(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				for _, want := range All() {
					if got, ok := Lookup(want.Int()); !ok || got != want {
						t.Errorf("Lookup(%d) = %v, %v", want.Int(), got, ok)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestCodeString(t *testing.T) {
	if got := NotFound.String(); got != "404 Not Found" {
		t.Fatalf("unexpected String: %q", got)
	}
	if !NotFound.IsError() || OK.IsError() {
		t.Fatalf("unexpected IsError")
	}
}
