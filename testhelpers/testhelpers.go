// Package testhelpers provides fixtures for testing the PocketBase-hosted handlers.
package testhelpers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})
	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	return app
}

// QuotationForm returns builder form values for the Sunrise Villa project:
// one ground floor holding a wood-window living room and an aluminium-window
// bedroom, both 12 x 10 x 10 ft with a 4 x 4 ft window, and default labour
// and utility charges.
func QuotationForm() url.Values {
	return url.Values{
		"quotation_number":  {"SC-QT-26-27-0000ABCD"},
		"project_name":      {"Sunrise Villa"},
		"location":          {"Pune"},
		"customer":          {"A. Rao"},
		"description":       {"Two bedroom residence"},
		"labour_workers":    {"10"},
		"labour_daily_rate": {"1500"},
		"labour_days":       {"90"},
		"electricity":       {"25000"},
		"water":             {"15000"},
		"transport":         {"30000"},

		"floors[0].id":       {"floor-1"},
		"floors[0].name":     {"Ground Floor"},
		"floors[0].expanded": {"true"},

		"floors[0].rooms[0].id":              {"room-1"},
		"floors[0].rooms[0].type":            {"Living Room"},
		"floors[0].rooms[0].length":          {"12"},
		"floors[0].rooms[0].width":           {"10"},
		"floors[0].rooms[0].height":          {"10"},
		"floors[0].rooms[0].window_width":    {"4"},
		"floors[0].rooms[0].window_height":   {"4"},
		"floors[0].rooms[0].window_material": {"Wood"},

		"floors[0].rooms[1].id":              {"room-2"},
		"floors[0].rooms[1].type":            {"Bedroom"},
		"floors[0].rooms[1].length":          {"12"},
		"floors[0].rooms[1].width":           {"10"},
		"floors[0].rooms[1].height":          {"10"},
		"floors[0].rooms[1].window_width":    {"4"},
		"floors[0].rooms[1].window_height":   {"4"},
		"floors[0].rooms[1].window_material": {"Aluminium"},
	}
}

// InvoiceForm returns invoice form values holding the default charges.
func InvoiceForm() url.Values {
	return url.Values{
		"project_name":      {"Sunrise Villa"},
		"invoice_number":    {"SC-INV-26-27-0000ABCD"},
		"initial_quotation": {"850000"},
		"supplier_bills":    {"920000"},
		"additional_orders": {"45000"},
		"labour":            {"135000"},
		"electricity":       {"25000"},
		"water":             {"15000"},
		"transport":         {"30000"},
		"excess_refund":     {"25000"},
	}
}

// NewFormRequest builds a url-encoded POST request, marked as an HTMX request.
func NewFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

// NewMultipartRequest builds an HTMX multipart POST carrying form plus one
// uploaded file in the "file" field.
func NewMultipartRequest(t *testing.T, target string, form url.Values, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, values := range form {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				t.Fatalf("write field %s: %v", key, err)
			}
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("HX-Request", "true")
	return req
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q", frag)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
