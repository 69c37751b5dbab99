package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":true,"message":"Verification successful","data":{"amount":250000,"status":"success"}}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test", srv.URL)
	result, err := client.VerifyTransaction(context.Background(), "ref-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(250000), result.Amount)
	assert.Equal(t, "success", result.Status)
}

func TestVerifyTransaction_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status":false,"message":"Transaction reference not found"}`))
	}))
	defer srv.Close()

	client := NewClient("sk_test", srv.URL)
	result, err := client.VerifyTransaction(context.Background(), "ref-404")

	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Contains(t, err.Error(), "Transaction reference not found")
	assert.Nil(t, result)
}

func TestVerifyTransaction_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewClient("sk_test", srv.URL)
	result, err := client.VerifyTransaction(context.Background(), "ref-1")

	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Nil(t, result)
}
