package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderUsecaseForTest() (*OrderUsecase, *MockOrderRepository, *MockOrderItemRepository) {
	orderRepo := new(MockOrderRepository)
	orderItems := new(MockOrderItemRepository)
	tx := &stubTxManager{repos: stubTxRepos{orders: orderRepo, orderItems: orderItems}}
	return NewOrderUsecase(tx), orderRepo, orderItems
}

// Test: 購入履歴は新しい順のまま返す
func TestListMyOrders(t *testing.T) {
	uc, orderRepo, orderItems := newOrderUsecaseForTest()
	ctx := context.Background()

	now := time.Now()
	orderRepo.On("ListByUserID", ctx, int64(1)).Return([]model.Order{
		{ID: 2, UserID: 1, Number: 2, Total: decimal.NewFromInt(50), Paid: true, CreatedAt: now},
		{ID: 1, UserID: 1, Number: 1, Total: decimal.NewFromInt(250), Paid: true, CreatedAt: now.Add(-time.Hour)},
	}, nil)
	orderItems.On("ListByOrderID", ctx, int64(2)).Return([]model.OrderItem{
		{OrderID: 2, ProductID: 102, ProductName: "Gorra", Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
	}, nil)
	orderItems.On("ListByOrderID", ctx, int64(1)).Return([]model.OrderItem{
		{OrderID: 1, ProductID: 101, ProductName: "Remera", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		{OrderID: 1, ProductID: 102, ProductName: "Gorra", Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
	}, nil)

	outs, err := uc.ListMyOrders(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, outs, 2)
	assert.Equal(t, "00002", outs[0].FormattedNumber)
	assert.Equal(t, "00001", outs[1].FormattedNumber)
	assert.Len(t, outs[1].Items, 2)
	assert.True(t, outs[1].Items[0].Subtotal.Equal(decimal.NewFromInt(200)))
}

// Test: 他人の注文は404。存在自体を漏らさない
func TestGetMyOrderDetailForeignOrder(t *testing.T) {
	uc, orderRepo, orderItems := newOrderUsecaseForTest()
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(5)).Return(model.Order{ID: 5, UserID: 2, Number: 3}, nil)

	_, err := uc.GetMyOrderDetail(ctx, 1, 5)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
	orderItems.AssertNotCalled(t, "ListByOrderID", mock.Anything, mock.Anything)
}

// Test: 存在しない注文も404
func TestGetMyOrderDetailNotFound(t *testing.T) {
	uc, orderRepo, _ := newOrderUsecaseForTest()
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(99)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetMyOrderDetail(ctx, 1, 99)

	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

// Test: 自分の注文は明細付きで取れる
func TestGetMyOrderDetail(t *testing.T) {
	uc, orderRepo, orderItems := newOrderUsecaseForTest()
	ctx := context.Background()

	orderRepo.On("FindByID", ctx, int64(5)).Return(model.Order{
		ID: 5, UserID: 1, Number: 3, Total: decimal.NewFromInt(100), Paid: true, ShippingAddress: "Calle 1",
	}, nil)
	orderItems.On("ListByOrderID", ctx, int64(5)).Return([]model.OrderItem{
		{OrderID: 5, ProductID: 101, ProductName: "Remera", Quantity: 1, UnitPrice: decimal.NewFromInt(100)},
	}, nil)

	out, err := uc.GetMyOrderDetail(ctx, 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, "00003", out.FormattedNumber)
	assert.Equal(t, "Calle 1", out.ShippingAddress)
	assert.Len(t, out.Items, 1)
}
