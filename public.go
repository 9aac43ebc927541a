package payjp

import (
	"context"

	"github.com/payjp/client-go/internal/api"
)

// PublicClient is a PAY.JP API client authenticated with a public key
// (pk_...). Public keys may only create tokens, so this client exposes
// nothing else. Use it in backends that receive raw card details and
// exchange them for tokens:
//
//	client, err := payjp.NewPublic(os.Getenv("PAYJP_PUBLIC_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	token, err := client.Tokens.Create(ctx, payjp.CreateTokenParams{
//	    Card: payjp.CardDetails{
//	        Number:   "4242424242424242",
//	        ExpMonth: 12,
//	        ExpYear:  2030,
//	        CVC:      "123",
//	    },
//	})
type PublicClient struct {
	api *api.Client

	// Tokens creates single-use card tokens.
	Tokens *PublicTokenService
}

// NewPublic creates a PublicClient authenticated with the given public
// API key. Key handling and options are the same as for New.
func NewPublic(publicKey string, opts ...Option) (*PublicClient, error) {
	cfg := defaultClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(publicKey, cfg)
	if err != nil {
		return nil, err
	}

	return &PublicClient{
		api:    apiClient,
		Tokens: &PublicTokenService{client: apiClient},
	}, nil
}

// BaseURL returns the API base URL the client sends requests to.
func (c *PublicClient) BaseURL() string {
	return c.api.BaseURL()
}

// PublicTokenService creates tokens with a public key. It is the only
// service available on a PublicClient.
type PublicTokenService struct {
	client *api.Client
}

// Create exchanges raw card details for a single-use token.
func (s *PublicTokenService) Create(ctx context.Context, params CreateTokenParams) (*Token, error) {
	var token Token
	if err := s.client.Post(ctx, "/tokens", params, &token); err != nil {
		return nil, wrapError(err)
	}
	return &token, nil
}
