package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusmarket/internal/config"
	"campusmarket/internal/payment"

	"github.com/stretchr/testify/assert"
)

func TestInlineConfig_NotConfigured(t *testing.T) {
	c := payment.NewClient(config.Flutterwave{})

	_, err := c.InlineConfig("order-1", 3500, payment.Customer{Email: "ada@example.com"})
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}

func TestInlineConfig_Defaults(t *testing.T) {
	c := payment.NewClient(config.Flutterwave{PublicKey: "pk_test"})

	cfg, err := c.InlineConfig("order-1", 3500, payment.Customer{
		Email: "ada@example.com",
		Name:  "Ada Obi",
		Phone: "08012345678",
	})
	assert.NoError(t, err)
	assert.Equal(t, "pk_test", cfg.PublicKey)
	assert.Equal(t, "order-1", cfg.TxRef)
	assert.Equal(t, int64(3500), cfg.Amount)
	assert.Equal(t, "NGN", cfg.Currency)
	assert.Equal(t, "card,ussd,banktransfer", cfg.PaymentOptions)
	assert.Equal(t, "ada@example.com", cfg.Customer.Email)
}

func TestVerifyTransaction_Successful(t *testing.T) {
	var gotAuth, gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("tx_ref")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"ok","data":{"status":"successful","tx_ref":"tx_123","amount":3500,"currency":"NGN"}}`))
	}))
	defer srv.Close()

	c := payment.NewClient(config.Flutterwave{PublicKey: "pk", SecretKey: "sk_test", BaseAPIURL: srv.URL})

	result, err := c.VerifyTransaction(context.Background(), "tx_123")
	assert.NoError(t, err)
	assert.Equal(t, payment.StatusSuccessful, result.Status)
	assert.Equal(t, "tx_123", result.Reference)
	assert.Equal(t, int64(3500), result.Amount)

	assert.Equal(t, "Bearer sk_test", gotAuth)
	assert.Equal(t, "/v3/transactions/verify_by_reference", gotPath)
	assert.Equal(t, "tx_123", gotQuery)
}

func TestVerifyTransaction_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","message":"ok","data":{"status":"cancelled","tx_ref":"tx_9"}}`))
	}))
	defer srv.Close()

	c := payment.NewClient(config.Flutterwave{SecretKey: "sk", BaseAPIURL: srv.URL})

	result, err := c.VerifyTransaction(context.Background(), "tx_9")
	assert.NoError(t, err)
	assert.Equal(t, payment.StatusCancelled, result.Status)
}

// 不明なステータスはfailedに落とす
func TestVerifyTransaction_UnknownStatusIsFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"no transaction found","data":{"status":"pending","tx_ref":"tx_9"}}`))
	}))
	defer srv.Close()

	c := payment.NewClient(config.Flutterwave{SecretKey: "sk", BaseAPIURL: srv.URL})

	result, err := c.VerifyTransaction(context.Background(), "tx_9")
	assert.NoError(t, err)
	assert.Equal(t, payment.StatusFailed, result.Status)
	assert.Equal(t, "no transaction found", result.Reason)
}

func TestVerifyTransaction_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := payment.NewClient(config.Flutterwave{SecretKey: "bad", BaseAPIURL: srv.URL})

	_, err := c.VerifyTransaction(context.Background(), "tx_9")
	assert.Error(t, err)
}

func TestVerifyTransaction_NotConfigured(t *testing.T) {
	c := payment.NewClient(config.Flutterwave{})

	_, err := c.VerifyTransaction(context.Background(), "tx_9")
	assert.ErrorIs(t, err, payment.ErrNotConfigured)
}
