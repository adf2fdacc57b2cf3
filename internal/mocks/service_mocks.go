// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/cart-service/internal/domain/model"
	"github.com/guttosm/cart-service/internal/orderapi"
	"github.com/guttosm/cart-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) CreateOrder(ctx context.Context, req *orderapi.OrderRequest, opts orderapi.CallOptions) (*orderapi.OrderResponse, error) {
	args := m.Called(ctx, req, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderapi.OrderResponse), args.Error(1)
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, item model.LineItem) (model.Cart, error) {
	args := m.Called(ctx, sessionID, item)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID, itemID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, sessionID, itemID string, quantity int) (model.Cart, error) {
	args := m.Called(ctx, sessionID, itemID, quantity)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(model.Cart), args.Error(1)
}

func (m *MockCartService) Quantity(ctx context.Context, sessionID, itemID string) (int, error) {
	args := m.Called(ctx, sessionID, itemID)
	return args.Int(0), args.Error(1)
}

func (m *MockCartService) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, sessionID string, req service.CheckoutRequest) (*service.CheckoutResult, error) {
	args := m.Called(ctx, sessionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CheckoutResult), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(tokenString string) (*service.CustomerClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CustomerClaims), args.Error(1)
}
