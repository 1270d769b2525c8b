package payment

import (
	"context"
	"fmt"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ChargeInput describes a payment authorization request
type ChargeInput struct {
	CustomerID uuid.UUID
	Amount     valueobject.Money
	Method     string // e.g. "card", "cod"
}

// ChargeResult is the gateway's response to a successful charge
type ChargeResult struct {
	TransactionID string
	Provider      string
}

// Gateway authorizes payments during checkout. Implementations wrap a
// concrete payment provider; checkout only depends on this interface.
type Gateway interface {
	Charge(ctx context.Context, input ChargeInput) (*ChargeResult, error)
	Refund(ctx context.Context, transactionID string, amount valueobject.Money) error
}

// MockGateway is a development gateway that authorizes every charge and
// issues synthetic transaction IDs.
type MockGateway struct{}

// NewMockGateway creates a new mock payment gateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Charge always succeeds with a generated transaction ID
func (g *MockGateway) Charge(_ context.Context, input ChargeInput) (*ChargeResult, error) {
	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("charge amount cannot be negative")
	}
	return &ChargeResult{
		TransactionID: "mock_txn_" + uuid.New().String(),
		Provider:      "mock",
	}, nil
}

// Refund always succeeds
func (g *MockGateway) Refund(_ context.Context, transactionID string, _ valueobject.Money) error {
	if transactionID == "" {
		return fmt.Errorf("transaction ID cannot be empty")
	}
	return nil
}

var _ Gateway = (*MockGateway)(nil)
