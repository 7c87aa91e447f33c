package usecase

import (
	"context"
	"errors"
	"net/http"

	"campusmarket/internal/domain/model"
	"campusmarket/internal/payment"
	repo "campusmarket/internal/repository"
	"campusmarket/internal/validator"
)

// PaymentGateway は外部ホスト型チェックアウトとの境界。
// 結果は必ず payment.Result のどれか1つで返る。
type PaymentGateway interface {
	InlineConfig(txRef string, amount int64, customer payment.Customer) (payment.InlineConfig, error)
	VerifyTransaction(ctx context.Context, txRef string) (payment.Result, error)
}

// CheckoutUsecase は3ステップのチェックアウトを進める。
// shipping → payment → confirmation。confirmationが終端。
type CheckoutUsecase struct {
	sessions    repo.CheckoutSessionStore
	cartRepo    repo.CartLineRepository
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	gateway     PaymentGateway
	idGen       IDGenerator
	clock       Clock
}

func NewCheckoutUsecase(
	sessions repo.CheckoutSessionStore,
	cartRepo repo.CartLineRepository,
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	gateway PaymentGateway,
	idGen IDGenerator,
	clock Clock,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		sessions:    sessions,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     gateway,
		idGen:       idGen,
		clock:       clock,
	}
}

type CheckoutStateOutput struct {
	Step          model.CheckoutStep    `json:"step"`
	Shipping      model.ShippingDetails `json:"shipping"`
	Items         []model.CartLine      `json:"items"`
	Summary       model.OrderSummary    `json:"summary"`
	PaymentConfig *payment.InlineConfig `json:"payment_config,omitempty"`
	OrderID       string                `json:"order_id,omitempty"`
	Message       string                `json:"message,omitempty"`
}

type CompletePaymentInput struct {
	Status string
	TxRef  string
}

// Start はセッションを開始する（既にあればそのまま返す）。
// カートが空ならチェックアウトに入れない。
func (u *CheckoutUsecase) Start(ctx context.Context, userID string) (CheckoutStateOutput, error) {
	if userID == "" {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	session, err := u.sessions.Get(ctx, userID)
	if err == nil {
		return u.buildState(ctx, session)
	}
	if err != repo.ErrNotFound {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(lines) == 0 {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	now := u.clock.Now()
	session = model.CheckoutSession{
		UserID:    userID,
		Step:      model.CheckoutStepShipping,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Save(ctx, session); err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return u.buildState(ctx, session)
}

// SubmitShipping は配送フォームを検証してpaymentへ進める。
// 不備があれば最初に失敗した項目だけを返し、状態はshippingのまま。
func (u *CheckoutUsecase) SubmitShipping(ctx context.Context, userID string, form model.ShippingDetails) (CheckoutStateOutput, error) {
	if userID == "" {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	session, err := u.sessions.Get(ctx, userID)
	if err == repo.ErrNotFound {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusNotFound, "checkout not started")
	}
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	if session.Step == model.CheckoutStepConfirmation {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusConflict, "checkout already completed")
	}

	if err := validator.ValidateShipping(form); err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(lines) == 0 {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}
	summary := ComputeSummary(lines)

	session.Shipping = form
	session.Step = model.CheckoutStepPayment
	if session.TxRef == "" {
		session.TxRef = "order-" + u.idGen.NewID()
	}
	session.UpdatedAt = u.clock.Now()

	// ウィジェット設定が作れないなら呼び出し前にローカルエラーで止める
	cfg, err := u.gateway.InlineConfig(session.TxRef, summary.Total, payment.Customer{
		Email: form.Email,
		Name:  form.FullName,
		Phone: form.Phone,
	})
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return CheckoutStateOutput{}, NewHTTPError(http.StatusServiceUnavailable, "payment system not available")
		}
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "payment error")
	}

	if err := u.sessions.Save(ctx, session); err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	out, err := u.buildState(ctx, session)
	if err != nil {
		return CheckoutStateOutput{}, err
	}
	out.PaymentConfig = &cfg
	return out, nil
}

// Back はpaymentからshippingへ戻す。フォーム入力は保持される。
func (u *CheckoutUsecase) Back(ctx context.Context, userID string) (CheckoutStateOutput, error) {
	if userID == "" {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	session, err := u.sessions.Get(ctx, userID)
	if err == repo.ErrNotFound {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusNotFound, "checkout not started")
	}
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	if session.Step == model.CheckoutStepConfirmation {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusConflict, "checkout already completed")
	}

	if session.Step == model.CheckoutStepPayment {
		session.Step = model.CheckoutStepShipping
		session.UpdatedAt = u.clock.Now()
		if err := u.sessions.Save(ctx, session); err != nil {
			return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
		}
	}

	return u.buildState(ctx, session)
}

// CompletePayment は決済コールバックを消費する。
// 成功申告はゲートウェイに照会してから注文を書く。
// 失敗・キャンセルは状態遷移なし（paymentに留まる）。
func (u *CheckoutUsecase) CompletePayment(ctx context.Context, userID string, in CompletePaymentInput) (CheckoutStateOutput, error) {
	if userID == "" {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	session, err := u.sessions.Get(ctx, userID)
	if err == repo.ErrNotFound {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusNotFound, "checkout not started")
	}
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	if session.Step != model.CheckoutStepPayment {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusConflict, "invalid step")
	}

	// 失敗/キャンセルは通知だけして留まる
	if in.Status != string(payment.StatusSuccessful) {
		out, err := u.buildState(ctx, session)
		if err != nil {
			return CheckoutStateOutput{}, err
		}
		if in.Status == string(payment.StatusCancelled) {
			out.Message = "payment was cancelled"
		} else {
			out.Message = "payment was not successful"
		}
		return out, nil
	}

	// 成功申告はこのセッションで発行したtx_ref以外受けない。
	// 他のtx_refが照会で成功になっても別決済の流用でしかない。
	if in.TxRef != session.TxRef {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, "invalid transaction reference")
	}

	// 必ず照会で裏取りする
	result, err := u.gateway.VerifyTransaction(ctx, session.TxRef)
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadGateway, "payment verification failed")
	}
	if result.Status != payment.StatusSuccessful {
		out, err := u.buildState(ctx, session)
		if err != nil {
			return CheckoutStateOutput{}, err
		}
		out.Message = "payment was not successful"
		return out, nil
	}

	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(lines) == 0 {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	summary := ComputeSummary(lines)

	// 照会で返った決済額が請求額と違うなら注文は書かない
	if result.Amount != summary.Total {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusBadRequest, "payment amount mismatch")
	}

	now := u.clock.Now()

	items := make([]model.OrderItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, model.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Quantity:  l.Quantity,
			ImageURL:  l.ImageURL,
			ShopID:    l.ShopID,
			ShopName:  l.ShopName,
			Size:      l.Size,
			CreatedAt: now,
		})
	}

	order := model.Order{
		ID:       u.idGen.NewID(),
		UserID:   userID,
		Status:   model.OrderStatusProcessing,
		Shipping: session.Shipping,
		Summary:  summary,
		Payment: model.PaymentInfo{
			Method:    "flutterwave",
			Reference: session.TxRef,
			Status:    "completed",
			Amount:    result.Amount,
		},
		CartPurged: false,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 販売数の加算は注文を壊さない範囲のベストエフォート
	for _, it := range items {
		_ = u.productRepo.AddSalesCount(ctx, it.ProductID, it.Quantity)
	}

	// カート削除。1件でも失敗したらマーカーは立てず、
	// 次のカート読み込みで後始末される。
	allPurged := true
	for _, l := range lines {
		if err := u.cartRepo.DeleteByID(ctx, l.ID); err != nil {
			allPurged = false
		}
	}
	if allPurged {
		_ = u.orderRepo.MarkCartPurged(ctx, order.ID)
	}

	session.Step = model.CheckoutStepConfirmation
	session.OrderID = order.ID
	session.UpdatedAt = now
	if err := u.sessions.Save(ctx, session); err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}

	return u.buildState(ctx, session)
}

func (u *CheckoutUsecase) buildState(ctx context.Context, session model.CheckoutSession) (CheckoutStateOutput, error) {
	out := CheckoutStateOutput{
		Step:     session.Step,
		Shipping: session.Shipping,
		OrderID:  session.OrderID,
	}

	// 確定後はカートを見せる必要がない
	if session.Step == model.CheckoutStepConfirmation {
		return out, nil
	}

	lines, err := u.cartRepo.ListByUser(ctx, session.UserID)
	if err != nil {
		return CheckoutStateOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	out.Items = lines
	out.Summary = ComputeSummary(lines)
	return out, nil
}
