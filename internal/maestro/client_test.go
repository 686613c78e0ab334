package maestro_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/custodia/signing-service/internal/config"
	"github/custodia/signing-service/internal/maestro"
)

func newTestClient(t *testing.T, handler http.Handler) (*maestro.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := maestro.NewClient(config.Maestro{
		URL:            srv.URL,
		TenantName:     "tenant",
		ServiceName:    "signing-service",
		APIKey:         "secret",
		RequestTimeout: 5 * time.Second,
	}, nil)

	return client, srv
}

func loginHandler(t *testing.T, token string, logins *int32) http.HandlerFunc {
	t.Helper()

	return func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(logins, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "signing-service", r.PostFormValue("username"))
		assert.Equal(t, "secret", r.PostFormValue("password"))
		assert.Equal(t, "password", r.PostFormValue("grant_type"))

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token})
	}
}

func TestGenerateKey(t *testing.T) {
	var logins int32
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/login", loginHandler(t, "tok-1", &logins))
	mux.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "client-1", body["domain_name"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"key_id":     "7cc0a78e-9e84-4eaf-a692-654244a4cfb9",
			"public_key": "03e68acfc0253a10620dff706b0a1b1f1f5833ea3beb3bde2250d5f271f3563606",
		})
	})

	client, _ := newTestClient(t, mux)

	res, err := client.GenerateKey(context.Background(), "client-1")
	require.NoError(t, err)
	assert.Equal(t, "7cc0a78e-9e84-4eaf-a692-654244a4cfb9", res.KeyID)
	assert.NotEmpty(t, res.PublicKey)
	assert.EqualValues(t, 1, atomic.LoadInt32(&logins))
}

func TestSignRetriesOnceOnUnauthorized(t *testing.T) {
	var logins int32
	var signCalls int32

	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/login", loginHandler(t, "tok-fresh", &logins))
	mux.HandleFunc("/sign", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&signCalls, 1) == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		assert.Equal(t, "Bearer tok-fresh", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"rlp_encoded_signed_transaction": "0x02f870",
			"transaction_hash":               "0xabc",
		})
	})

	client, _ := newTestClient(t, mux)

	res, err := client.Sign(context.Background(), &maestro.SignRequest{OrderID: "o-1"})
	require.NoError(t, err)
	assert.Equal(t, "0x02f870", res.SignedTransaction)
	assert.Equal(t, "0xabc", res.TransactionHash)
	assert.EqualValues(t, 2, atomic.LoadInt32(&signCalls))
	assert.EqualValues(t, 2, atomic.LoadInt32(&logins))
}

func TestSignRejected(t *testing.T) {
	var logins int32
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/login", loginHandler(t, "tok-1", &logins))
	mux.HandleFunc("/sign", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"message": "Metadata approval status is not equals to one.",
		})
	})

	client, _ := newTestClient(t, mux)

	_, err := client.Sign(context.Background(), &maestro.SignRequest{OrderID: "o-1"})
	require.Error(t, err)

	var rejected *maestro.ErrRejected
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reason, "Metadata approval status")
}

func TestFetchPolicy(t *testing.T) {
	var logins int32
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/login", loginHandler(t, "tok-1", &logins))
	mux.HandleFunc("/policies/fetch", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "default-policy", body["policy_name"])
		assert.Equal(t, "client-1", body["domain_name"])

		_ = json.NewEncoder(w).Encode(maestro.PolicyDefinition{
			Required: []maestro.PolicyApprover{{Name: "risk", Level: "domain"}},
			Optional: []maestro.PolicyApprover{{Name: "ops", Level: "tenant"}},
		})
	})

	client, _ := newTestClient(t, mux)

	def, err := client.FetchPolicy(context.Background(), "default-policy", "client-1")
	require.NoError(t, err)
	require.Len(t, def.Required, 1)
	assert.Equal(t, "risk", def.Required[0].Name)
	require.Len(t, def.Optional, 1)
	assert.Equal(t, "ops", def.Optional[0].Name)
}

func TestLoginFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tenant/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "bad credentials"})
	})

	client, _ := newTestClient(t, mux)

	_, err := client.GenerateKey(context.Background(), "client-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad credentials")
}
