package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPubMedToolReturnsAbstracts(t *testing.T) {
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("term"); got != "fever headache" {
			t.Errorf("unexpected search term: %q", got)
		}
		w.Write([]byte(`{"esearchresult":{"idlist":["11111","22222"]}}`))
	}))
	t.Cleanup(search.Close)

	fetch := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "11111,22222" {
			t.Errorf("unexpected fetch ids: %q", got)
		}
		w.Write([]byte("1. Influenza presentation.\n\nAbstract: fever and headache are common."))
	}))
	t.Cleanup(fetch.Close)

	pubmed, err := newPubMedTool(http.DefaultClient, search.URL, fetch.URL)
	if err != nil {
		t.Fatalf("newPubMedTool err: %v", err)
	}

	info, err := pubmed.Info(context.Background())
	if err != nil {
		t.Fatalf("Info err: %v", err)
	}
	if info.Name != "pubmed_search" {
		t.Fatalf("unexpected tool name: %s", info.Name)
	}

	out, err := pubmed.InvokableRun(context.Background(), `{"query":"fever headache"}`)
	if err != nil {
		t.Fatalf("InvokableRun err: %v", err)
	}
	if !strings.Contains(out, "fever and headache are common") {
		t.Fatalf("abstract missing from output: %q", out)
	}
}

func TestPubMedToolNoHits(t *testing.T) {
	search := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult":{"idlist":[]}}`))
	}))
	t.Cleanup(search.Close)

	pubmed, err := newPubMedTool(http.DefaultClient, search.URL, "http://unused.invalid")
	if err != nil {
		t.Fatalf("newPubMedTool err: %v", err)
	}

	out, err := pubmed.InvokableRun(context.Background(), `{"query":"zzzz"}`)
	if err != nil {
		t.Fatalf("InvokableRun err: %v", err)
	}
	if !strings.Contains(out, "No articles found") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGeocodeToolResolvesAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Lahore" {
			t.Errorf("unexpected query: %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != geoUserAgent {
			t.Errorf("unexpected user agent: %q", got)
		}
		w.Write([]byte(`[{"lat":"31.52","lon":"74.35","display_name":"Lahore, Punjab, Pakistan"}]`))
	}))
	t.Cleanup(srv.Close)

	geocode, err := newGeocodeTool(http.DefaultClient, srv.URL)
	if err != nil {
		t.Fatalf("newGeocodeTool err: %v", err)
	}

	out, err := geocode.InvokableRun(context.Background(), `{"address":"Lahore"}`)
	if err != nil {
		t.Fatalf("InvokableRun err: %v", err)
	}
	if !strings.Contains(out, "31.52") || !strings.Contains(out, "74.35") {
		t.Fatalf("coordinates missing from output: %q", out)
	}
}

func TestGeocodeToolNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	geocode, err := newGeocodeTool(http.DefaultClient, srv.URL)
	if err != nil {
		t.Fatalf("newGeocodeTool err: %v", err)
	}

	if _, err := geocode.InvokableRun(context.Background(), `{"address":"nowhere at all"}`); err == nil {
		t.Fatal("expected error for empty geocode result")
	}
}

func TestDefaultToolsComplete(t *testing.T) {
	tools, err := defaultTools(http.DefaultClient)
	if err != nil {
		t.Fatalf("defaultTools err: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("unexpected tool count: %d", len(tools))
	}
}
