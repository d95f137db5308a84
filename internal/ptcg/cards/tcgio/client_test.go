package tcgio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetCard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cards/sv3-125" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		_ = json.NewEncoder(w).Encode(cardEnvelope{Data: &Card{
			ID:             "sv3-125",
			Name:           "Charizard ex",
			Supertype:      "Pokémon",
			Subtypes:       []string{"Stage 2", "ex"},
			Number:         "125",
			RegulationMark: "G",
			Set:            Set{ID: "sv3", PtcgoCode: "OBF"},
		}})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	card, err := client.GetCard(context.Background(), "sv3-125")
	if err != nil {
		t.Fatalf("GetCard: %v", err)
	}
	if card.Name != "Charizard ex" {
		t.Errorf("Name = %s, want Charizard ex", card.Name)
	}
	if card.RegulationMark != "G" {
		t.Errorf("RegulationMark = %s, want G", card.RegulationMark)
	}
	if card.Set.PtcgoCode != "OBF" {
		t.Errorf("Set.PtcgoCode = %s, want OBF", card.Set.PtcgoCode)
	}
}

func TestGetCard_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"not found","code":404}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetCard(context.Background(), "sv3-9999")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestCardsBySet_Pagination(t *testing.T) {
	const total = pageSize + 2

	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.RawQuery)

		q := r.URL.Query()
		if q.Get("q") != "set.ptcgoCode:OBF" {
			t.Errorf("q = %s, want set.ptcgoCode:OBF", q.Get("q"))
		}

		page := q.Get("page")
		list := cardList{TotalCount: total}
		count := pageSize
		if page == "2" {
			count = total - pageSize
		}
		for i := 0; i < count; i++ {
			list.Data = append(list.Data, &Card{Name: fmt.Sprintf("Card %s-%d", page, i)})
		}
		_ = json.NewEncoder(w).Encode(list)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	cards, err := client.CardsBySet(context.Background(), "OBF")
	if err != nil {
		t.Fatalf("CardsBySet: %v", err)
	}
	if len(cards) != total {
		t.Errorf("len(cards) = %d, want %d", len(cards), total)
	}
	if len(requests) != 2 {
		t.Errorf("request count = %d, want 2", len(requests))
	}
}

func TestCardsBySet_EmptySet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(cardList{TotalCount: 0})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	cards, err := client.CardsBySet(context.Background(), "ZZZ")
	if err != nil {
		t.Fatalf("CardsBySet: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("len(cards) = %d, want 0", len(cards))
	}
}

func TestAPIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		_ = json.NewEncoder(w).Encode(setList{})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithAPIKey("test-key-123"))
	if _, err := client.GetSets(context.Background()); err != nil {
		t.Fatalf("GetSets: %v", err)
	}
	if gotKey != "test-key-123" {
		t.Errorf("X-Api-Key = %q, want test-key-123", gotKey)
	}
}

func TestAPIErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad query","code":400}}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	_, err := client.GetSets(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Code != 400 || apiErr.Message != "bad query" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestGetSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(setEnvelope{Data: &Set{
			ID:        "sv3",
			Name:      "Obsidian Flames",
			PtcgoCode: "OBF",
			Total:     230,
		}})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	set, err := client.GetSet(context.Background(), "sv3")
	if err != nil {
		t.Fatalf("GetSet: %v", err)
	}
	if set.Name != "Obsidian Flames" || set.PtcgoCode != "OBF" {
		t.Errorf("set = %+v", set)
	}
}

func TestRetryOn429(t *testing.T) {
	var attempts int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_ = json.NewEncoder(w).Encode(setList{Data: []*Set{{ID: "sv3"}}})
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL))
	sets, err := client.GetSets(context.Background())
	if err != nil {
		t.Fatalf("GetSets: %v", err)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
	if len(sets) != 1 {
		t.Errorf("len(sets) = %d, want 1", len(sets))
	}
}
