package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shop/internal/domain/model"
	"shop/internal/invoice"
	"shop/internal/payment"
	repo "shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// 空カートでの確定・プリファレンス作成
	ErrEmptyCart = NewHTTPError(http.StatusBadRequest, "cart empty")
	// 決済プロセッサの呼び出し失敗。詳細はログだけに出す
	ErrPaymentPreference = NewHTTPError(http.StatusBadGateway, "payment unavailable")
	// 注文確定シーケンスの失敗。全てロールバック済み
	ErrOrderPersistence = NewHTTPError(http.StatusInternalServerError, "order failed")
)

// テストで差し替えるため請求書描画は約束だけ持つ
type InvoiceRenderer interface {
	Render(doc invoice.Document) (string, error)
}

// CheckoutUsecaseはプリファレンス作成と注文確定の2段階を担う。
// 前半は外部リダイレクト前、後半は決済から戻ったあとに呼ばれる
type CheckoutUsecase struct {
	tx           repo.TransactionManager
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	sessionRepo  repo.CheckoutSessionRepository
	userRepo     repo.UserRepository
	gateway      payment.Gateway
	invoices     InvoiceRenderer
	logger       *zap.Logger
	currency     string
	backURLs     payment.BackURLs
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	cartRepo repo.CartRepository,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	sessionRepo repo.CheckoutSessionRepository,
	userRepo repo.UserRepository,
	gateway payment.Gateway,
	invoices InvoiceRenderer,
	logger *zap.Logger,
	currency string,
	backURLs payment.BackURLs,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:           tx,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		sessionRepo:  sessionRepo,
		userRepo:     userRepo,
		gateway:      gateway,
		invoices:     invoices,
		logger:       logger,
		currency:     currency,
		backURLs:     backURLs,
	}
}

// CreatePreference は決済プロセッサにカート内容を渡してリダイレクト先を得る。
// 配送先は注文確定まで預かる
func (u *CheckoutUsecase) CreatePreference(ctx context.Context, userID int64, shippingAddress string) (string, error) {
	if userID <= 0 {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cart, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cartItems, err := u.cartItemRepo.ListByCartID(ctx, cart.ID)
	if err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(cartItems) == 0 {
		return "", ErrEmptyCart
	}

	items := make([]payment.Item, 0, len(cartItems))
	for _, it := range cartItems {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			return "", NewHTTPError(http.StatusInternalServerError, "db error")
		}
		items = append(items, payment.Item{
			Title:     p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
			Currency:  u.currency,
		})
	}

	//確定時に読めるよう配送先を先に保存する
	if err := u.sessionRepo.Put(ctx, userID, shippingAddress); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}

	url, err := u.gateway.CreatePreference(ctx, payment.PreferenceRequest{
		Items:             items,
		PayerEmail:        user.Email,
		BackURLs:          u.backURLs,
		ExternalReference: uuid.NewString(),
	})
	if err != nil {
		u.logger.Warn("payment preference failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return "", ErrPaymentPreference
	}

	return url, nil
}

type PlaceOrderOutput struct {
	OrderOutput
	InvoiceURL string `json:"invoice_url"`
}

// PlaceOrder はカートを注文に変換する。決済は外側で済んでいる前提。
// 番号採番・明細スナップショット・在庫減算・カート空けを
// 1トランザクションで行い、途中で失敗したら全部戻す
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, userID int64) (PlaceOrderOutput, error) {
	if userID <= 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	//配送先は無ければ空のまま進める
	shippingAddress := ""
	if s, err := u.sessionRepo.FindByUserID(ctx, userID); err == nil {
		shippingAddress = s.ShippingAddress
	}

	var order model.Order
	var orderItems []model.OrderItem

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByUserID(ctx, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrEmptyCart
		}
		if err != nil {
			return ErrOrderPersistence
		}

		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return ErrOrderPersistence
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		//合計と明細スナップショット。単価はこの時点の定価で固定する
		total := decimal.Zero
		now := time.Now()
		orderItems = make([]model.OrderItem, 0, len(cartItems))

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err != nil {
				return ErrOrderPersistence
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:   ci.ProductID,
				ProductName: p.Name,
				Quantity:    ci.Quantity,
				UnitPrice:   p.Price,
				CreatedAt:   now,
			})

			total = total.Add(p.Price.Mul(decimal.NewFromInt(ci.Quantity)))
		}

		//採番行ロックで番号を直列化する
		number, err := r.Orders().NextNumber(ctx)
		if err != nil {
			return ErrOrderPersistence
		}

		order = model.Order{
			UserID:          userID,
			Number:          number,
			Total:           total,
			Paid:            true,
			ShippingAddress: shippingAddress,
			CreatedAt:       now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return ErrOrderPersistence
		}
		order.ID = orderID

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return ErrOrderPersistence
		}

		//在庫減算。0で頭打ちにして注文自体は失敗させない
		for _, ci := range cartItems {
			if err := r.Inventory().DecreaseStockClamped(ctx, ci.ProductID, ci.Quantity); err != nil {
				return ErrOrderPersistence
			}
		}

		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return ErrOrderPersistence
		}

		if err := r.CheckoutSessions().DeleteByUserID(ctx, userID); err != nil {
			return ErrOrderPersistence
		}

		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			if errors.Is(err, ErrOrderPersistence) {
				u.logger.Error("order placement rolled back",
					zap.Int64("user_id", userID),
				)
			}
			return PlaceOrderOutput{}, err
		}
		u.logger.Error("order placement rolled back",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return PlaceOrderOutput{}, ErrOrderPersistence
	}

	out := PlaceOrderOutput{OrderOutput: toOrderOutput(order, orderItems)}

	//請求書はコミット後に書く。失敗しても注文は成立している
	if url, err := u.renderInvoice(ctx, order, orderItems); err != nil {
		u.logger.Warn("invoice render failed",
			zap.Int64("order_id", order.ID),
			zap.Error(err),
		)
	} else {
		out.InvoiceURL = url
	}

	return out, nil
}

func (u *CheckoutUsecase) renderInvoice(ctx context.Context, order model.Order, items []model.OrderItem) (string, error) {
	user, err := u.userRepo.FindByID(ctx, order.UserID)
	if err != nil {
		return "", err
	}

	lines := make([]invoice.Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, invoice.Line{
			Product:   it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return u.invoices.Render(invoice.Document{
		Number:        order.Number,
		CustomerName:  user.FullName(),
		CustomerEmail: user.Email,
		Address:       order.ShippingAddress,
		IssuedAt:      order.CreatedAt,
		Lines:         lines,
		Total:         order.Total,
	})
}
