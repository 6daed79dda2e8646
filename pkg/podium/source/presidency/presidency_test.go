package presidency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

const catalogPage = `<html><body>
<div class="view-content">
  <a href="/documents/annual-message-1">First Annual Message</a>
  <a href="https://archive.example/documents/annual-message-2">Second Annual Message</a>
  <a href="/documents/annual-message-1">First again (pager repeat)</a>
  <a href="/about">About</a>
</div>
</body></html>`

const documentPage = `<html><body>
<div class="field-docs-person">
  <h3 class="diet-title"><a href="/people/president/example">Barack Obama</a></h3>
</div>
<span class="date-display-single">January 25, 2011</span>
<div class="field-docs-content">
  <p>The economy is strong. [Applause] We must act now.</p>
  <p></p>
  <p>God bless the United States of America.</p>
</div>
</body></html>`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/catalog", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogPage))
	})
	mux.HandleFunc("/documents/annual-message-1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(documentPage))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestListDocumentIDs(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL, WithHTTPClient(srv.Client()))

	ids, err := client.ListDocumentIDs(context.Background(), "/catalog")
	if err != nil {
		t.Fatal(err)
	}

	// Document links only, deduplicated, absolute links normalized,
	// page order preserved.
	want := []string{"/documents/annual-message-1", "/documents/annual-message-2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("ids = %q, want %q", ids, want)
	}
}

func TestFetch(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL, WithHTTPClient(srv.Client()))

	doc, err := client.Fetch(context.Background(), "/documents/annual-message-1")
	if err != nil {
		t.Fatal(err)
	}

	if doc.Title != "Barack Obama" {
		t.Errorf("Title = %q", doc.Title)
	}
	if doc.Date != "January 25, 2011" {
		t.Errorf("Date = %q", doc.Date)
	}
	wantParagraphs := []string{
		"The economy is strong. [Applause] We must act now.",
		"God bless the United States of America.",
	}
	if !reflect.DeepEqual(doc.Paragraphs, wantParagraphs) {
		t.Errorf("Paragraphs = %q, want %q", doc.Paragraphs, wantParagraphs)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := newTestServer(t)
	client := New(srv.URL, WithHTTPClient(srv.Client()))

	_, err := client.Fetch(context.Background(), "/documents/does-not-exist")
	if err == nil {
		t.Fatal("Expected error for missing document")
	}
}

func TestFetchUnreachable(t *testing.T) {
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	client := New(url)
	_, err := client.Fetch(context.Background(), "/documents/annual-message-1")
	if err == nil {
		t.Fatal("Expected error for unreachable archive")
	}
}
