package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "articlestats/internal/platform/errors"
)

type analyzeURL struct {
	URL   string `json:"url" validate:"required,http_url"`
	URLID string `json:"url_id" validate:"omitempty,max=64"`
}

func TestParseJSON(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
	}{
		{name: "ok", body: `{"url":"https://example.com/a","url_id":"blackassign0001"}`},
		{name: "empty", body: "", code: perr.ErrorCodeJSON},
		{name: "invalid", body: `{`, code: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"url":"https://example.com","extra":1}`, code: perr.ErrorCodeJSON},
		{name: "trailing", body: `{"url":"https://example.com"}{}`, code: perr.ErrorCodeJSON},
		{name: "missing url", body: `{"url_id":"x"}`, code: perr.ErrorCodeValidation, field: "url"},
		{name: "ftp url", body: `{"url":"ftp://example.com/a"}`, code: perr.ErrorCodeValidation, field: "url"},
		{name: "relative url", body: `{"url":"/a/b"}`, code: perr.ErrorCodeValidation, field: "url"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body))
			got, err := ParseJSON[analyzeURL](req)
			if c.code == 0 && err == nil {
				if got.URLID != "blackassign0001" {
					t.Fatalf("decoded %+v", got)
				}
				return
			}
			if !perr.IsCode(err, c.code) {
				t.Fatalf("code = %v (%v), want %v", perr.CodeOf(err), err, c.code)
			}
			if c.field != "" {
				if e, _ := perr.As(err); e.Field() != c.field {
					t.Fatalf("field = %q, want %q", e.Field(), c.field)
				}
			}
		})
	}
}

func TestParseJSON_HTTPURLMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"url":"nope"}`))
	_, err := ParseJSON[analyzeURL](req)
	if err == nil || !strings.Contains(err.Error(), "absolute http or https URL") {
		t.Fatalf("want translated http_url message, got %v", err)
	}
}

func TestParseJSON_Options(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	if _, err := ParseJSON[note](req, JSONOptions{AllowEmptyBody: true}); err != nil {
		t.Fatalf("empty body allowed: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"note":"0123456789"}`))
	if _, err := ParseJSON[note](req, JSONOptions{MaxBytes: 8}); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("oversized body should fail as JSON error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	if _, err := ParseJSON[note](req); err != nil {
		t.Fatalf("GET with empty body should pass, got %v", err)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil -> %q %q", f, m)
	}
	type short struct {
		Text string `json:"text" validate:"min=3"`
	}
	f, m := ValidationFieldAndMessage(Get().Validator.Struct(short{Text: "a"}))
	if f != "text" || m != "text must be at least 3" {
		t.Fatalf("got %q %q", f, m)
	}
}
