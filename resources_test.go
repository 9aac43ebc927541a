package payjp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestPlanService_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/plans" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("amount"); got != "500" {
			t.Errorf("amount = %q, want 500", got)
		}
		if got := r.PostForm.Get("interval"); got != "month" {
			t.Errorf("interval = %q, want month", got)
		}
		if got := r.PostForm.Get("trial_days"); got != "30" {
			t.Errorf("trial_days = %q, want 30", got)
		}
		fmt.Fprint(w, `{"id":"pln_abc","object":"plan","livemode":false,"created":1700000000,"amount":500,"currency":"jpy","interval":"month","trial_days":30}`)
	})

	plan, err := client.Plans.Create(context.Background(), CreatePlanParams{
		Amount:    500,
		Currency:  "jpy",
		Interval:  PlanIntervalMonth,
		TrialDays: 30,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if plan.Interval != PlanIntervalMonth || plan.TrialDays != 30 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestPlanService_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/plans/pln_abc" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"id":"pln_abc","deleted":true,"livemode":false}`)
	})

	deleted, err := client.Plans.Delete(context.Background(), "pln_abc")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != "pln_abc" {
		t.Errorf("ID = %q", deleted.ID)
	}
}

func TestTransferService_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transfers/tr_abc" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"id": "tr_abc",
			"object": "transfer",
			"livemode": false,
			"created": 1700000000,
			"amount": 9000,
			"currency": "jpy",
			"status": "paid",
			"summary": {"charge_amount":10000,"charge_count":5,"charge_fee":300,"refund_amount":700,"refund_count":1},
			"bank": {"bank_code":"0001","branch_code":"123","account_type":"普通","account_number":"1234567","account_holder_name":"ヤマダ タロウ"},
			"term": "tm_abc"
		}`)
	})

	transfer, err := client.Transfers.Retrieve(context.Background(), "tr_abc")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if transfer.Status != "paid" || transfer.Amount != 9000 {
		t.Errorf("transfer = %+v", transfer)
	}
	if transfer.Summary.ChargeCount != 5 || transfer.Summary.RefundAmount != 700 {
		t.Errorf("summary = %+v", transfer.Summary)
	}
	if transfer.Bank == nil || transfer.Bank.BankCode != "0001" {
		t.Errorf("bank = %+v", transfer.Bank)
	}
}

func TestEventService_List_DecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"object": "list",
			"data": [{
				"id": "evnt_abc",
				"object": "event",
				"livemode": false,
				"created": 1700000000,
				"type": "charge.succeeded",
				"data": {"object": {"id":"ch_abc","object":"charge","livemode":false,"created":1,"amount":1000,"currency":"jpy","paid":true,"captured":true,"refunded":false,"amount_refunded":0}},
				"pending_webhooks": 1
			}],
			"has_more": false,
			"url": "/v1/events",
			"count": 1
		}`)
	})

	list, err := client.Events.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	event := list.Data[0]
	if event.Type != EventTypeChargeSucceeded {
		t.Errorf("Type = %q, want charge.succeeded", event.Type)
	}

	var charge Charge
	if err := json.Unmarshal(event.Data.Object, &charge); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if charge.ID != "ch_abc" || charge.Amount != 1000 {
		t.Errorf("charge = %+v", charge)
	}
}

func TestEventService_UnknownTypeSurvives(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"evnt_abc","object":"event","livemode":false,"created":1,"type":"dispute.created","data":{"object":{}}}`)
	})

	event, err := client.Events.Retrieve(context.Background(), "evnt_abc")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if event.Type != EventType("dispute.created") {
		t.Errorf("Type = %q, want raw dispute.created", event.Type)
	}
}

func TestAccountService_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/account" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"id":"acct_abc","object":"account","livemode":false,"created":1700000000,"email":"merchant@example.com","merchant_name":"Example Shop","currencies_supported":["jpy"]}`)
	})

	account, err := client.Account.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if account.MerchantName != "Example Shop" {
		t.Errorf("MerchantName = %q", account.MerchantName)
	}
	if len(account.CurrenciesSupported) != 1 || account.CurrenciesSupported[0] != "jpy" {
		t.Errorf("CurrenciesSupported = %v", account.CurrenciesSupported)
	}
}

func TestStatementService_IssueURLs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/statements/st_abc/statement_urls" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		fmt.Fprint(w, `{"object":"statement_urls","expires":1700003600,"url":"https://pay.jp/_/statements/abcdef"}`)
	})

	urls, err := client.Statements.IssueURLs(context.Background(), "st_abc")
	if err != nil {
		t.Fatalf("IssueURLs: %v", err)
	}
	if urls.URL == "" || urls.Expires != 1700003600 {
		t.Errorf("urls = %+v", urls)
	}
}

func TestBalanceService_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/balances/ba_abc" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"id":"ba_abc","object":"balance","livemode":false,"created":1700000000,"total":12000,"available":10000,"pending":2000,"state":"collecting"}`)
	})

	balance, err := client.Balances.Retrieve(context.Background(), "ba_abc")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if balance.Total != 12000 || balance.Available != 10000 || balance.Pending != 2000 {
		t.Errorf("balance = %+v", balance)
	}
}

func TestTermService_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/terms" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"object":"list","data":[{"id":"tm_abc","object":"term","livemode":false,"start_at":1700000000,"end_at":1702592000,"charge_count":120,"refund_count":3}],"has_more":false,"url":"/v1/terms","count":1}`)
	})

	list, err := client.Terms.List(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	term := list.Data[0]
	if term.ChargeCount != 120 || term.StartAt != 1700000000 {
		t.Errorf("term = %+v", term)
	}
}

func TestThreeDSecureRequestService_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/three_d_secure_requests" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("resource_id"); got != "car_abc" {
			t.Errorf("resource_id = %q, want car_abc", got)
		}
		fmt.Fprint(w, `{"id":"tdsr_abc","object":"three_d_secure_request","livemode":false,"created":1700000000,"resource_id":"car_abc","status":"in_progress","authentication_url":"https://pay.jp/_/tds/abc"}`)
	})

	req, err := client.ThreeDSecureRequests.Create(context.Background(), CreateThreeDSecureRequestParams{
		ResourceID: "car_abc",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if req.Status != ThreeDSecureStatusInProgress {
		t.Errorf("Status = %q, want in_progress", req.Status)
	}
	if req.AuthenticationURL == "" {
		t.Error("AuthenticationURL is empty")
	}
}

func TestTenantService_Create_BankAccountBrackets(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tenants" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm: %v", err)
		}
		if got := r.PostForm.Get("platform_fee_rate"); got != "10.15" {
			t.Errorf("platform_fee_rate = %q, want 10.15", got)
		}
		if got := r.PostForm.Get("bank_account[bank_code]"); got != "0001" {
			t.Errorf("bank_account[bank_code] = %q, want 0001", got)
		}
		if got := r.PostForm.Get("bank_account[account_number]"); got != "1234567" {
			t.Errorf("bank_account[account_number] = %q, want 1234567", got)
		}
		fmt.Fprint(w, `{"id":"ten_abc","object":"tenant","livemode":false,"created":1700000000,"name":"Sub-merchant","platform_fee_rate":"10.15"}`)
	})

	tenant, err := client.Tenants.Create(context.Background(), CreateTenantParams{
		Name:            "Sub-merchant",
		PlatformFeeRate: "10.15",
		BankAccount: &TenantBankAccount{
			BankCode:          "0001",
			BranchCode:        "123",
			AccountType:       "普通",
			AccountNumber:     "1234567",
			AccountHolderName: "ヤマダ タロウ",
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tenant.PlatformFeeRate != "10.15" {
		t.Errorf("PlatformFeeRate = %q", tenant.PlatformFeeRate)
	}
}

func TestTenantService_CreateApplicationURLs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tenants/ten_abc/application_urls" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.ContentLength != 0 {
			t.Errorf("ContentLength = %d, want 0", r.ContentLength)
		}
		fmt.Fprint(w, `{"url":"https://pay.jp/_/applications/abc","expires":1700003600}`)
	})

	urls, err := client.Tenants.CreateApplicationURLs(context.Background(), "ten_abc")
	if err != nil {
		t.Fatalf("CreateApplicationURLs: %v", err)
	}
	if urls.URL == "" || urls.Expires == 0 {
		t.Errorf("urls = %+v", urls)
	}
}

func TestTenantTransferService_Retrieve(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tenant_transfers/ten_tr_abc" {
			t.Errorf("path = %s", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"id": "ten_tr_abc",
			"object": "tenant_transfer",
			"livemode": false,
			"created": 1700000000,
			"tenant": "ten_abc",
			"amount": 8000,
			"currency": "jpy",
			"status": "pending",
			"summary": {"charge_amount":10000,"charge_count":4,"charge_fee":300,"platform_fee":1000,"refund_amount":700,"refund_count":1}
		}`)
	})

	transfer, err := client.TenantTransfers.Retrieve(context.Background(), "ten_tr_abc")
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if transfer.Tenant != "ten_abc" || transfer.Summary.PlatformFee != 1000 {
		t.Errorf("transfer = %+v", transfer)
	}
}
