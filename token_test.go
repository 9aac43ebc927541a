package payjp

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const tokenJSON = `{
	"id": "tok_abc",
	"object": "token",
	"livemode": false,
	"created": 1700000000,
	"used": false,
	"card": {
		"id": "car_abc",
		"object": "card",
		"livemode": false,
		"created": 1700000000,
		"brand": "Visa",
		"exp_month": 12,
		"exp_year": 2030,
		"last4": "4242"
	}
}`

func TestTokenService_Create_BracketEncoding(t *testing.T) {
	var rawBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tokens" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		rawBody = string(body)
		fmt.Fprint(w, tokenJSON)
	})

	token, err := client.Tokens.Create(context.Background(), CreateTokenParams{
		Card: CardDetails{
			Number:   "4242424242424242",
			ExpMonth: 12,
			ExpYear:  2030,
			CVC:      "123",
			Name:     "Test User",
			Email:    "test@example.com",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token.ID != "tok_abc" {
		t.Errorf("ID = %q, want tok_abc", token.ID)
	}
	if token.Card.Last4 != "4242" {
		t.Errorf("Card.Last4 = %q, want 4242", token.Card.Last4)
	}

	// Card fields travel as bracket keys, percent-encoded on the wire.
	for _, want := range []string{
		"card%5Bnumber%5D=4242424242424242",
		"card%5Bexp_month%5D=12",
		"card%5Bexp_year%5D=2030",
		"card%5Bcvc%5D=123",
		"card%5Bname%5D=Test+User",
		"card%5Bemail%5D=test%40example.com",
	} {
		if !strings.Contains(rawBody, want) {
			t.Errorf("body missing %q: %s", want, rawBody)
		}
	}
}

func TestTokenService_Create_OmitsEmptyOptionalFields(t *testing.T) {
	var rawBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rawBody = string(body)
		fmt.Fprint(w, tokenJSON)
	})

	_, err := client.Tokens.Create(context.Background(), CreateTokenParams{
		Card: CardDetails{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if strings.Contains(rawBody, "name") || strings.Contains(rawBody, "address") {
		t.Errorf("optional fields leaked into body: %s", rawBody)
	}
}

func TestTokenService_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tokens/tok_abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, tokenJSON)
	})

	token, err := client.Tokens.Retrieve(context.Background(), "tok_abc")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if token.Used {
		t.Error("Used = true, want false")
	}
}

func TestTokenService_TdsFinish_EmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tokens/tok_abc/tds_finish" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		fmt.Fprint(w, tokenJSON)
	})

	if _, err := client.Tokens.TdsFinish(context.Background(), "tok_abc"); err != nil {
		t.Fatalf("TdsFinish: %v", err)
	}
}

func TestPublicClient_CreateToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/tokens" {
			t.Errorf("path = %s, want /tokens", r.URL.Path)
		}
		fmt.Fprint(w, tokenJSON)
	}))
	defer server.Close()

	client, err := NewPublic("pk_test_abc", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("NewPublic: %v", err)
	}

	token, err := client.Tokens.Create(context.Background(), CreateTokenParams{
		Card: CardDetails{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if token.ID != "tok_abc" {
		t.Errorf("ID = %q, want tok_abc", token.ID)
	}

	// base64("pk_test_abc:")
	if want := "Basic cGtfdGVzdF9hYmM6"; gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
}

func TestNewPublic_RequiresKey(t *testing.T) {
	if _, err := NewPublic("  "); err == nil {
		t.Error("NewPublic with blank key should fail")
	}
}
