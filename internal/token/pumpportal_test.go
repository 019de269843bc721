package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MatevzKlancar/phyacc/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWallet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/create-wallet", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"apiKey":"key","walletPublicKey":"Addr1","privateKey":"secret"}`))
	}))
	defer server.Close()

	client := NewClient(config.TokenConfig{ApiBase: server.URL, Timeout: 5})
	wallet, err := client.CreateWallet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "key", wallet.ApiKey)
	assert.Equal(t, "Addr1", wallet.WalletPublicKey)
}

func TestCreateWalletServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(config.TokenConfig{ApiBase: server.URL, Timeout: 5})
	_, err := client.CreateWallet(context.Background())
	assert.Error(t, err)
}

func TestCreateWalletIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"privateKey":"secret"}`))
	}))
	defer server.Close()

	client := NewClient(config.TokenConfig{ApiBase: server.URL, Timeout: 5})
	_, err := client.CreateWallet(context.Background())
	assert.Error(t, err)
}
