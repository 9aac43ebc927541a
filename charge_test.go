package payjp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func chargeJSON(id string, amount int64) string {
	return fmt.Sprintf(`{
		"id": %q,
		"object": "charge",
		"livemode": false,
		"created": 1700000000,
		"amount": %d,
		"currency": "jpy",
		"paid": true,
		"captured": true,
		"refunded": false,
		"amount_refunded": 0,
		"fee_rate": "3.00"
	}`, id, amount)
}

func TestChargeService_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/charges" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "1000" {
			t.Errorf("amount = %q, want 1000", got)
		}
		if got := r.PostForm.Get("currency"); got != "jpy" {
			t.Errorf("currency = %q, want jpy", got)
		}
		if got := r.PostForm.Get("capture"); got != "false" {
			t.Errorf("capture = %q, want false", got)
		}
		if got := r.PostForm.Get("metadata[order_id]"); got != "6735" {
			t.Errorf("metadata[order_id] = %q, want 6735", got)
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, chargeJSON("ch_abc", 1000))
	})

	charge, err := client.Charges.Create(context.Background(), CreateChargeParams{
		Amount:   1000,
		Currency: "jpy",
		Card:     "tok_abc",
		Capture:  Bool(false),
		Metadata: Metadata{"order_id": "6735"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if charge.ID != "ch_abc" || charge.Amount != 1000 {
		t.Errorf("charge = %+v", charge)
	}
	if charge.FeeRate != "3.00" {
		t.Errorf("FeeRate = %q, want 3.00", charge.FeeRate)
	}
}

func TestChargeService_Create_OmitsUnsetCapture(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if _, present := r.PostForm["capture"]; present {
			t.Error("capture should be omitted when unset")
		}
		fmt.Fprint(w, chargeJSON("ch_abc", 1000))
	})

	_, err := client.Charges.Create(context.Background(), CreateChargeParams{
		Amount:   1000,
		Currency: "jpy",
		Card:     "tok_abc",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestChargeService_Capture(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/charges/ch_abc/capture" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "500" {
			t.Errorf("amount = %q, want 500", got)
		}
		fmt.Fprint(w, chargeJSON("ch_abc", 500))
	})

	charge, err := client.Charges.Capture(context.Background(), "ch_abc", CaptureChargeParams{Amount: 500})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if charge.Amount != 500 {
		t.Errorf("Amount = %d, want 500", charge.Amount)
	}
}

func TestChargeService_Refund(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charges/ch_abc/refund" {
			t.Errorf("path = %s, want /charges/ch_abc/refund", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("refund_reason"); got != "requested by customer" {
			t.Errorf("refund_reason = %q", got)
		}
		fmt.Fprint(w, `{"id":"ch_abc","object":"charge","livemode":false,"created":1700000000,"amount":1000,"currency":"jpy","paid":true,"captured":true,"refunded":true,"amount_refunded":1000,"refund_reason":"requested by customer"}`)
	})

	charge, err := client.Charges.Refund(context.Background(), "ch_abc", RefundChargeParams{
		RefundReason: "requested by customer",
	})
	if err != nil {
		t.Fatalf("Refund: %v", err)
	}
	if !charge.Refunded || charge.AmountRefunded != 1000 {
		t.Errorf("charge = %+v", charge)
	}
}

func TestChargeService_Refund_FullWhenAmountZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if _, present := r.PostForm["amount"]; present {
			t.Error("zero amount should be omitted for a full refund")
		}
		fmt.Fprint(w, chargeJSON("ch_abc", 1000))
	})

	if _, err := client.Charges.Refund(context.Background(), "ch_abc", RefundChargeParams{}); err != nil {
		t.Fatalf("Refund: %v", err)
	}
}

func TestChargeService_Reauth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/charges/ch_abc/reauth" {
			t.Errorf("path = %s, want /charges/ch_abc/reauth", r.URL.Path)
		}
		fmt.Fprint(w, chargeJSON("ch_abc", 1000))
	})

	if _, err := client.Charges.Reauth(context.Background(), "ch_abc", ReauthChargeParams{ExpiryDays: 7}); err != nil {
		t.Fatalf("Reauth: %v", err)
	}
}

func TestChargeService_TdsFinish(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/charges/ch_abc/tds_finish" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		fmt.Fprint(w, chargeJSON("ch_abc", 1000))
	})

	if _, err := client.Charges.TdsFinish(context.Background(), "ch_abc"); err != nil {
		t.Fatalf("TdsFinish: %v", err)
	}
}

func TestChargeService_List_Filters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if got := q.Get("limit"); got != "10" {
			t.Errorf("limit = %q, want 10", got)
		}
		if got := q.Get("customer"); got != "cus_abc" {
			t.Errorf("customer = %q, want cus_abc", got)
		}
		fmt.Fprintf(w, `{"object":"list","data":[%s],"has_more":false,"url":"/v1/charges","count":1}`, chargeJSON("ch_abc", 1000))
	})

	list, err := client.Charges.List(context.Background(), ListChargeParams{
		ListParams: ListParams{Limit: 10},
		Customer:   "cus_abc",
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Count != 1 || len(list.Data) != 1 || list.Data[0].ID != "ch_abc" {
		t.Errorf("list = %+v", list)
	}
}

func TestChargeService_DeclinedCard(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"status":402,"type":"card_error","message":"Card declined","code":"card_declined"}}`)
	})

	_, err := client.Charges.Create(context.Background(), CreateChargeParams{
		Amount:   1000,
		Currency: "jpy",
		Card:     "tok_declined",
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	want := "[402] card_error: Card declined (code: card_declined)"
	if apiErr.Error() != want {
		t.Errorf("Error() = %q, want %q", apiErr.Error(), want)
	}
}
