package maestro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/metrics"
	"github/custodia/signing-service/internal/util"
)

// metadataRejectedMessage is the signer authority's reply when the approver
// metadata does not carry an approval.
const metadataRejectedMessage = "Metadata approval status is not equals to one."

// ErrRejected is returned by Sign when the signer authority declines the
// request rather than failing.
type ErrRejected struct {
	Reason string
}

func (e *ErrRejected) Error() string {
	return "signer authority rejected the request: " + e.Reason
}

// Client talks to the signer authority. All calls carry a bearer token; a 401
// triggers a single token refresh and one retry. The token cell is guarded by
// a RWMutex so concurrent requests share one refresh.
type Client struct {
	config  config.Maestro
	http    *http.Client
	metrics *metrics.Service

	mu    sync.RWMutex
	token string
}

func NewClient(cfg config.Maestro, m *metrics.Service) *Client {
	return &Client{
		config:  cfg,
		metrics: m,
		http: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// GenerateKeyResponse is the signer authority's answer to a key generation
// request. The public key is SEC1 hex.
type GenerateKeyResponse struct {
	KeyID     string `json:"key_id"`
	PublicKey string `json:"public_key"`
}

// GenerateKey asks the signer authority to create a key pair in the client's
// domain. The private key never leaves the authority.
func (c *Client) GenerateKey(ctx context.Context, clientID string) (*GenerateKeyResponse, error) {
	var out GenerateKeyResponse
	err := c.do(ctx, http.MethodPost, "/generate", map[string]string{
		"domain_name": clientID,
	}, &out)
	c.metrics.CountSignerCall("generate_key", err)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// AuthorizingEntity carries one approver's signed decision, forwarded to the
// signer authority for verification.
type AuthorizingEntity struct {
	Name              string `json:"name"`
	Level             string `json:"level"`
	Metadata          string `json:"metadata"`
	MetadataSignature string `json:"metadata_signature"`
}

// SignRequest is the payload of a signing call. The transaction is the
// normalized form with nonce zeroed; ReplacementNonce carries the real nonce
// for speedup and cancellation replacements.
type SignRequest struct {
	OrderID             string              `json:"order_id"`
	KeyID               string              `json:"key_id"`
	TransactionType     string              `json:"transaction_type"`
	Transaction         json.RawMessage     `json:"transaction"`
	PolicyName          string              `json:"policy_name"`
	AuthorizingEntities []AuthorizingEntity `json:"authorizing_entities"`
	ReplacementNonce    *int64              `json:"replacement_nonce,omitempty"`
}

// SignResponse carries the signed transaction produced by the authority.
type SignResponse struct {
	SignedTransaction string `json:"rlp_encoded_signed_transaction"`
	TransactionHash   string `json:"transaction_hash"`
}

// Sign submits the approved request for signing. A decline from the authority
// is returned as *ErrRejected.
func (c *Client) Sign(ctx context.Context, req *SignRequest) (*SignResponse, error) {
	var out SignResponse
	err := c.do(ctx, http.MethodPost, "/sign", req, &out)
	c.metrics.CountSignerCall("sign", err)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// PolicyApprover is one approver entry of a policy definition.
type PolicyApprover struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// PolicyDefinition lists the approvers a policy requires and allows.
type PolicyDefinition struct {
	Required []PolicyApprover `json:"required"`
	Optional []PolicyApprover `json:"optional"`
}

// FetchPolicy resolves a policy name into its approver lists for the client's
// domain.
func (c *Client) FetchPolicy(ctx context.Context, policyName string, clientID string) (*PolicyDefinition, error) {
	var out PolicyDefinition
	err := c.do(ctx, http.MethodPost, "/policies/fetch", map[string]string{
		"policy_name": policyName,
		"domain_name": clientID,
	}, &out)
	c.metrics.CountSignerCall("fetch_policy", err)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	token, err := c.currentToken(ctx)
	if err != nil {
		return err
	}

	status, raw, err := c.roundTrip(ctx, method, path, body, token)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized {
		token, err = c.refreshToken(ctx, token)
		if err != nil {
			return err
		}

		status, raw, err = c.roundTrip(ctx, method, path, body, token)
		if err != nil {
			return err
		}
	}

	if status < 200 || status >= 300 {
		message := errorMessage(raw)
		if strings.Contains(message, metadataRejectedMessage) {
			return &ErrRejected{Reason: message}
		}

		return errors.Errorf("signer authority returned status %d: %s", status, message)
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(raw, out), "failed to decode signer authority response")
}

func (c *Client) roundTrip(ctx context.Context, method string, path string, body interface{}, token string) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to encode signer authority request")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.URL+path, reader)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to build signer authority request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errors.Wrap(err, "signer authority request failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to read signer authority response")
	}

	return res.StatusCode, raw, nil
}

// currentToken returns the cached token, logging in when none is held yet.
func (c *Client) currentToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token != "" {
		return token, nil
	}

	return c.refreshToken(ctx, "")
}

// refreshToken logs in again unless another goroutine already replaced the
// stale token.
func (c *Client) refreshToken(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.token != stale {
		return c.token, nil
	}

	token, err := c.login(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	util.LogFromContext(ctx).Debug().Msg("Refreshed signer authority token")

	return token, nil
}

func (c *Client) login(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("username", c.config.ServiceName)
	form.Set("password", c.config.APIKey)
	form.Set("grant_type", "password")

	endpoint := fmt.Sprintf("%s/%s/login", c.config.URL, c.config.TenantName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build signer authority login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "signer authority login failed")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read signer authority login response")
	}

	if res.StatusCode != http.StatusOK {
		return "", errors.Errorf("signer authority login returned status %d: %s", res.StatusCode, errorMessage(raw))
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", errors.Wrap(err, "failed to decode signer authority login response")
	}
	if body.AccessToken == "" {
		return "", errors.New("signer authority login returned an empty token")
	}

	return body.AccessToken, nil
}

func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return body.Message
	}

	return string(raw)
}
