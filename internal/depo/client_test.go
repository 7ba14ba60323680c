package depo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/hephix/backend/internal/logging"
)

func testLogger() logging.Logger {
	return logging.New(logr.Discard())
}

// fakeUpstream records every GraphQL request and replies with a canned
// handler.
type fakeUpstream struct {
	calls     int
	lastQuery string
	lastVars  map[string]any
	respond   func(w http.ResponseWriter)
}

func (f *fakeUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		var body struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.lastQuery = body.Query
		f.lastVars = body.Variables
		f.respond(w)
	}
}

func respondProducts(nodes []map[string]any, totalCount int) func(http.ResponseWriter) {
	edges := make([]map[string]any, 0, len(nodes))
	for _, node := range nodes {
		edges = append(edges, map[string]any{"node": node})
	}
	payload := map[string]any{
		"data": map[string]any{
			"products": map[string]any{
				"pageInfo": map[string]any{"totalCount": totalCount},
				"edges":    edges,
			},
		},
	}
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func productNode(name string, price float64) map[string]any {
	return map[string]any{
		"id":   12345,
		"name": name,
		"prices": []map[string]any{
			{"yellow": map[string]any{"priceWithVat": price, "unit": "gab"}},
		},
	}
}

func TestSearchEmptyQueryRejectedBeforeNetwork(t *testing.T) {
	upstream := &fakeUpstream{respond: respondProducts(nil, 0)}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := client.Search(context.Background(), query, 10)
		if !IsInvalidInput(err) {
			t.Fatalf("query %q: expected invalid input error, got %v", query, err)
		}
	}
	if upstream.calls != 0 {
		t.Fatalf("expected no upstream calls, got %d", upstream.calls)
	}
}

func TestSearchClampsLimit(t *testing.T) {
	upstream := &fakeUpstream{respond: respondProducts(nil, 0)}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 10: 10, 50: 50, 51: 50, 1000: 50}
	for requested, want := range cases {
		if _, err := client.Search(context.Background(), "hammer", requested); err != nil {
			t.Fatalf("limit %d: unexpected error: %v", requested, err)
		}
		rows, ok := upstream.lastVars["rows"].(float64)
		if !ok {
			t.Fatalf("limit %d: rows variable missing: %v", requested, upstream.lastVars)
		}
		if int(rows) != want {
			t.Fatalf("limit %d: expected rows %d, got %d", requested, want, int(rows))
		}
	}
}

func TestSearchSendsTrimmedQuery(t *testing.T) {
	upstream := &fakeUpstream{respond: respondProducts(nil, 0)}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	if _, err := client.Search(context.Background(), "  hammer  ", 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := upstream.lastVars["searchString"]; got != "hammer" {
		t.Fatalf("expected trimmed searchString, got %v", got)
	}
	if got := upstream.lastVars["start"]; got != float64(0) {
		t.Fatalf("expected start 0, got %v", got)
	}
}

func TestSearchReturnsProductsInUpstreamOrder(t *testing.T) {
	nodes := []map[string]any{
		productNode("Hammer A", 9.99),
		productNode("Hammer B", 14.50),
		productNode("Hammer C", 3.20),
	}
	upstream := &fakeUpstream{respond: respondProducts(nodes, 3)}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	result, err := client.Search(context.Background(), "hammer", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(result.Products))
	}
	for i, want := range []string{"Hammer A", "Hammer B", "Hammer C"} {
		if result.Products[i].Name != want {
			t.Fatalf("product %d: expected %q, got %q", i, want, result.Products[i].Name)
		}
	}
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	upstream := &fakeUpstream{respond: respondProducts(nil, 0)}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	result, err := client.Search(context.Background(), "unobtainium", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 0 {
		t.Fatalf("expected zero products, got %d", len(result.Products))
	}
}

func TestSearchTimeoutIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		respondProducts(nil, 0)(w)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, testLogger())
	_, err := client.Search(context.Background(), "hammer", 10)
	if !IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestSearchConnectionRefusedIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	_, err := client.Search(context.Background(), "hammer", 10)
	if !IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestSearchGraphQLErrorIsUpstreamError(t *testing.T) {
	upstream := &fakeUpstream{respond: func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"errors":[{"message":"field products not found"}]}`)
	}}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	_, err := client.Search(context.Background(), "hammer", 10)
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) || upstreamErr.Message == "" {
		t.Fatalf("expected upstream message to be carried, got %v", err)
	}
}

func TestSearchNonJSONErrorStatusIsUpstreamError(t *testing.T) {
	upstream := &fakeUpstream{respond: func(w http.ResponseWriter) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	_, err := client.Search(context.Background(), "hammer", 10)
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
