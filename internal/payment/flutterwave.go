package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"campusmarket/internal/config"
)

// 決済結果は必ずこの3つのどれか1つ。
type Status string

const (
	StatusSuccessful Status = "successful"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Result はゲートウェイのコールバック/照会の結果。
// オーケストレータの状態遷移はこの型だけを見る。
type Result struct {
	Status    Status `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

type Customer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone_number"`
}

// InlineConfig はホスト型チェックアウトUIの起動パラメータ。
// クライアントはこれをそのままFlutterwaveCheckout()に渡す。
type InlineConfig struct {
	PublicKey      string   `json:"public_key"`
	TxRef          string   `json:"tx_ref"`
	Amount         int64    `json:"amount"`
	Currency       string   `json:"currency"`
	PaymentOptions string   `json:"payment_options"`
	Customer       Customer `json:"customer"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
}

// 設定が無い場合は起動前にローカルエラーにする（呼び出しは試みない）。
var ErrNotConfigured = errors.New("payment gateway not configured")

// Client はFlutterwave REST APIの薄いラッパー。
// リトライはしない。状態も持たない。
type Client struct {
	httpClient *http.Client
	baseAPIURL string
	publicKey  string
	secretKey  string
}

func NewClient(cfg config.Flutterwave) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL: cfg.BaseAPIURL,
		publicKey:  cfg.PublicKey,
		secretKey:  cfg.SecretKey,
	}
}

// InlineConfig は決済ウィジェット起動用の設定を組み立てる。
func (c *Client) InlineConfig(txRef string, amount int64, customer Customer) (InlineConfig, error) {
	if c.publicKey == "" {
		return InlineConfig{}, ErrNotConfigured
	}

	return InlineConfig{
		PublicKey:      c.publicKey,
		TxRef:          txRef,
		Amount:         amount,
		Currency:       "NGN",
		PaymentOptions: "card,ussd,banktransfer",
		Customer:       customer,
		Title:          "Shop Order Payment",
		Description:    "Payment for your order",
	}, nil
}

type verifyResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status   string `json:"status"`
		TxRef    string `json:"tx_ref"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"data"`
}

// VerifyTransaction はtx_refで取引を照会する。
// コールバックの申告は信用せず、注文を書く前に必ずここを通す。
func (c *Client) VerifyTransaction(ctx context.Context, txRef string) (Result, error) {
	if c.secretKey == "" {
		return Result{}, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v3/transactions/verify_by_reference?tx_ref=%s",
		c.baseAPIURL, url.QueryEscape(txRef))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("verify transaction: unexpected status %d", resp.StatusCode)
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return Result{}, fmt.Errorf("decode verify response: %w", err)
	}

	switch vr.Data.Status {
	case "successful":
		return Result{
			Status:    StatusSuccessful,
			Reference: vr.Data.TxRef,
			Amount:    vr.Data.Amount,
		}, nil
	case "cancelled":
		return Result{Status: StatusCancelled, Reference: vr.Data.TxRef}, nil
	default:
		return Result{
			Status:    StatusFailed,
			Reference: vr.Data.TxRef,
			Reason:    vr.Message,
		}, nil
	}
}
