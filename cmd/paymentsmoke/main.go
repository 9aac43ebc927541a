// Command paymentsmoke exercises a PAY.JP account from the command line.
// It is meant for smoke-testing an integration in test mode: each command
// performs one API call and prints the result as JSON on stdout, so the
// output can be piped into other tooling.
//
// The secret key is read from PAYJP_SECRET_KEY, loaded from a .env file
// when one is present. PAYJP_BASE_URL overrides the API host for mock
// servers.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	payjp "github.com/payjp/client-go"
)

// Config carries the environment and streams a run uses, so tests can
// substitute their own.
type Config struct {
	SecretKey string
	BaseURL   string
	Stdout    io.Writer
	Stderr    io.Writer
}

func DefaultConfig() Config {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	return Config{
		SecretKey: os.Getenv("PAYJP_SECRET_KEY"),
		BaseURL:   os.Getenv("PAYJP_BASE_URL"),
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

func main() {
	cfg := DefaultConfig()
	if err := run(os.Args, cfg); err != nil {
		fmt.Fprintf(cfg.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errors.New("usage: paymentsmoke <account|charge|refund|list-charges|cleanup-customer> [args]")
	}

	var opts []payjp.Option
	if cfg.BaseURL != "" {
		opts = append(opts, payjp.WithBaseURL(cfg.BaseURL))
	}

	client, err := payjp.New(cfg.SecretKey, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	switch args[1] {
	case "account":
		return showAccount(ctx, client, cfg)
	case "charge":
		if len(args) < 3 {
			return errors.New("usage: paymentsmoke charge <token-id> [amount]")
		}
		amount := int64(1000)
		if len(args) > 3 {
			amount, err = strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return fmt.Errorf("parse amount: %w", err)
			}
		}
		return createCharge(ctx, client, cfg, args[2], amount)
	case "refund":
		if len(args) < 3 {
			return errors.New("usage: paymentsmoke refund <charge-id>")
		}
		return refundCharge(ctx, client, cfg, args[2])
	case "list-charges":
		limit := int64(10)
		if len(args) > 2 {
			limit, err = strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("parse limit: %w", err)
			}
		}
		return listCharges(ctx, client, cfg, limit)
	case "cleanup-customer":
		if len(args) < 3 {
			return errors.New("usage: paymentsmoke cleanup-customer <customer-id>")
		}
		return cleanupCustomer(ctx, client, cfg, args[2])
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func showAccount(ctx context.Context, client *payjp.Client, cfg Config) error {
	account, err := client.Account.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieve account: %w", err)
	}
	return emit(cfg.Stdout, account)
}

// ChargeOutput is the stable shape charge commands print, independent of
// the full API object.
type ChargeOutput struct {
	ID             string `json:"id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Paid           bool   `json:"paid"`
	Captured       bool   `json:"captured"`
	Refunded       bool   `json:"refunded"`
	AmountRefunded int64  `json:"amountRefunded"`
	FailureCode    string `json:"failureCode,omitempty"`
}

func chargeOutput(charge *payjp.Charge) ChargeOutput {
	return ChargeOutput{
		ID:             charge.ID,
		Amount:         charge.Amount,
		Currency:       charge.Currency,
		Paid:           charge.Paid,
		Captured:       charge.Captured,
		Refunded:       charge.Refunded,
		AmountRefunded: charge.AmountRefunded,
		FailureCode:    charge.FailureCode,
	}
}

func createCharge(ctx context.Context, client *payjp.Client, cfg Config, tokenID string, amount int64) error {
	charge, err := client.Charges.Create(ctx, payjp.CreateChargeParams{
		Amount:      amount,
		Currency:    "jpy",
		Card:        tokenID,
		Description: "paymentsmoke test charge",
	})
	if err != nil {
		return fmt.Errorf("create charge: %w", err)
	}
	return emit(cfg.Stdout, chargeOutput(charge))
}

func refundCharge(ctx context.Context, client *payjp.Client, cfg Config, chargeID string) error {
	charge, err := client.Charges.Refund(ctx, chargeID, payjp.RefundChargeParams{
		RefundReason: "paymentsmoke cleanup",
	})
	if err != nil {
		return fmt.Errorf("refund charge: %w", err)
	}
	return emit(cfg.Stdout, chargeOutput(charge))
}

func listCharges(ctx context.Context, client *payjp.Client, cfg Config, limit int64) error {
	list, err := client.Charges.List(ctx, payjp.ListChargeParams{
		ListParams: payjp.ListParams{Limit: limit},
	})
	if err != nil {
		return fmt.Errorf("list charges: %w", err)
	}

	output := struct {
		Charges []ChargeOutput `json:"charges"`
		HasMore bool           `json:"hasMore"`
	}{
		Charges: make([]ChargeOutput, 0, len(list.Data)),
		HasMore: list.HasMore,
	}
	for i := range list.Data {
		output.Charges = append(output.Charges, chargeOutput(&list.Data[i]))
	}
	return emit(cfg.Stdout, output)
}

func cleanupCustomer(ctx context.Context, client *payjp.Client, cfg Config, customerID string) error {
	deleted, err := client.Customers.Delete(ctx, customerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return emit(cfg.Stdout, map[string]any{"id": deleted.ID, "deleted": deleted.Deleted})
}

func emit(w io.Writer, v any) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
