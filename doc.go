// Package payjp is a client for the PAY.JP payment API.
//
// Create a Client with a secret key and reach every resource through its
// service:
//
//	client, err := payjp.New(os.Getenv("PAYJP_SECRET_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	charge, err := client.Charges.Create(ctx, payjp.CreateChargeParams{
//	    Amount:   1000,
//	    Currency: "jpy",
//	    Customer: "cus_xxxxx",
//	})
//
// Requests are form-encoded, authenticated with HTTP basic auth, and
// rate-limited responses are retried with exponential backoff. Failures
// surface as typed errors; match them with errors.Is and errors.As:
//
//	if errors.Is(err, payjp.ErrRateLimited) {
//	    // back off at the application level
//	}
//	var apiErr *payjp.APIError
//	if errors.As(err, &apiErr) && apiErr.Type == "card_error" {
//	    // the card was declined
//	}
//
// Backends that only tokenize cards should use NewPublic with a public
// key, which can create tokens and nothing else.
package payjp
