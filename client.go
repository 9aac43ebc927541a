package payjp

import (
	"github.com/payjp/client-go/internal/api"
)

// Client is a PAY.JP API client authenticated with a secret key. Resource
// operations are grouped into services, one per API resource:
//
//	client, err := payjp.New(os.Getenv("PAYJP_SECRET_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	charge, err := client.Charges.Create(ctx, payjp.CreateChargeParams{
//	    Amount:   1000,
//	    Currency: "jpy",
//	    Card:     "tok_xxxxx",
//	})
//
// A Client is safe for concurrent use by multiple goroutines.
type Client struct {
	api *api.Client

	// Tokens creates and retrieves single-use card tokens.
	Tokens *TokenService
	// Charges creates and manages payments.
	Charges *ChargeService
	// Customers manages stored customers.
	Customers *CustomerService
	// Cards manages the cards saved on a customer.
	Cards *CardService
	// Plans manages recurring billing plans.
	Plans *PlanService
	// Subscriptions manages customer subscriptions to plans.
	Subscriptions *SubscriptionService
	// Transfers provides read access to bank transfers.
	Transfers *TransferService
	// Events provides read access to the account's event log.
	Events *EventService
	// Account retrieves the authenticated account.
	Account *AccountService
	// Statements provides read access to statements.
	Statements *StatementService
	// Balances provides read access to balances.
	Balances *BalanceService
	// Terms provides read access to settlement terms.
	Terms *TermService
	// ThreeDSecureRequests manages standalone 3-D Secure verifications.
	ThreeDSecureRequests *ThreeDSecureRequestService
	// Tenants manages platform sub-merchants.
	Tenants *TenantService
	// TenantTransfers provides read access to per-tenant transfers.
	TenantTransfers *TenantTransferService
}

// New creates a Client authenticated with the given secret API key.
// Surrounding whitespace in the key is trimmed, so keys read from
// environment variables or files may carry a trailing newline. An empty
// key yields ErrMissingAPIKey; invalid option values yield
// ErrInvalidConfig.
func New(apiKey string, opts ...Option) (*Client, error) {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{api: apiClient}
	c.Tokens = &TokenService{client: apiClient}
	c.Charges = &ChargeService{client: apiClient}
	c.Customers = &CustomerService{client: apiClient}
	c.Cards = &CardService{client: apiClient}
	c.Plans = &PlanService{client: apiClient}
	c.Subscriptions = &SubscriptionService{client: apiClient}
	c.Transfers = &TransferService{client: apiClient}
	c.Events = &EventService{client: apiClient}
	c.Account = &AccountService{client: apiClient}
	c.Statements = &StatementService{client: apiClient}
	c.Balances = &BalanceService{client: apiClient}
	c.Terms = &TermService{client: apiClient}
	c.ThreeDSecureRequests = &ThreeDSecureRequestService{client: apiClient}
	c.Tenants = &TenantService{client: apiClient}
	c.TenantTransfers = &TenantTransferService{client: apiClient}
	return c, nil
}

// BaseURL returns the API base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// buildAPIClient translates the public configuration into the internal
// client's options. Values the caller never set are omitted so the internal
// defaults apply; values the caller did set are passed through unchanged,
// including invalid ones, so they fail validation there.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	var apiOpts []api.Option

	if cfg.baseURL != "" {
		apiOpts = append(apiOpts, api.WithBaseURL(cfg.baseURL))
	}
	if cfg.timeoutSet {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.maxRetriesSet || cfg.retryDelaySet {
		retry := api.DefaultRetryConfig()
		if cfg.maxRetriesSet {
			retry.MaxRetries = cfg.maxRetries
		}
		if cfg.retryDelaySet {
			retry.InitialDelay = cfg.initialDelay
			retry.MaxDelay = cfg.maxDelay
		}
		apiOpts = append(apiOpts, api.WithRetryConfig(retry))
	}
	if cfg.logger != nil {
		apiOpts = append(apiOpts, api.WithLogger(*cfg.logger))
	}

	return api.New(apiKey, apiOpts...)
}
