package httpx

import (
	"context"
	"errors"
	"testing"

	"github.com/adeilh/go-httpstatus/status"
)

func newCatalogServer(t *testing.T, prefix string) *TestServer {
	t.Helper()
	server := NewServer()
	server.RegisterRoutes(func(a *App) { RegisterCatalog(a, prefix) })
	ts := NewServerTestServer(server)
	t.Cleanup(ts.Close)
	return ts
}

func codesOf(vs []StatusView) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = v.Code
	}
	return out
}

func TestCatalogListsRegistry(t *testing.T) {
	client := newCatalogServer(t, "/statuses/").NewClient()

	var all []StatusView
	if _, err := client.Get(context.Background(), "/statuses", &all); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != status.Len() {
		t.Fatalf("expected %d entries got %d", status.Len(), len(all))
	}

	var redirects []StatusView
	if _, err := client.Get(context.Background(), "/statuses", &redirects, WithQuery(map[string]string{"class": "3xx"})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(redirects) != len(status.RedirectionCodes()) || redirects[len(redirects)-1].Message != "Permanent Redirect" {
		t.Fatalf("unexpected redirection list: %v", redirects)
	}

	_, err := client.Get(context.Background(), "/statuses", nil, WithQuery(map[string]string{"class": "7xx"}))
	if !errors.Is(err, status.BadRequest.Err()) {
		t.Fatalf("expected 400 for unknown class, got %v", err)
	}
}

func TestCatalogFixedSubsets(t *testing.T) {
	client := newCatalogServer(t, "statuses").NewClient()

	tests := []struct {
		path string
		want []int
	}{
		{"/statuses/webdav", []int{102, 207, 208, 422, 423, 424, 507, 508}},
		{"/statuses/experimental", []int{402, 425}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var got []StatusView
			if _, err := client.Get(context.Background(), tt.path, &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			codes := codesOf(got)
			if len(codes) != len(tt.want) {
				t.Fatalf("got %v want %v", codes, tt.want)
			}
			for i := range codes {
				if codes[i] != tt.want[i] {
					t.Fatalf("got %v want %v", codes, tt.want)
				}
			}
		})
	}

	var errs []StatusView
	if _, err := client.Get(context.Background(), "/statuses/errors", &errs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n := len(status.ClientErrorCodes())
	if len(errs) != n+len(status.ServerErrorCodes()) || errs[n-1].Code != 451 || errs[n].Code != 500 {
		t.Fatalf("unexpected error ordering: %v", codesOf(errs))
	}
}

func TestCatalogSingleCode(t *testing.T) {
	client := newCatalogServer(t, "/statuses").NewClient()

	var teapot StatusView
	if _, err := client.Get(context.Background(), "/statuses/418", &teapot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := StatusView{Code: 418, Message: "I’m a Teapot", Class: "client error"}
	if teapot != want {
		t.Fatalf("got %#v want %#v", teapot, want)
	}

	var locked StatusView
	if _, err := client.Get(context.Background(), "/statuses/423", &locked); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !locked.WebDAV || locked.Experimental {
		t.Fatalf("unexpected flags: %#v", locked)
	}

	var body ErrorBody
	_, err := client.Get(context.Background(), "/statuses/299", nil, WithErrorResult(&body))
	if !errors.Is(err, status.NotFound.Err()) || body.Error != "unknown status code 299" {
		t.Fatalf("expected 404 for undefined code, got %v %#v", err, body)
	}

	_, err = client.Get(context.Background(), "/statuses/abc", nil)
	if !errors.Is(err, status.BadRequest.Err()) {
		t.Fatalf("expected 400 for non-numeric code, got %v", err)
	}
}
