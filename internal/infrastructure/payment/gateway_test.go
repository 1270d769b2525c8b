package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/Viraj-016/buyhive-marketplace/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_Charge(t *testing.T) {
	g := NewMockGateway()
	amount, err := valueobject.NewMoneyUSDFromString("49.99")
	require.NoError(t, err)

	result, err := g.Charge(context.Background(), ChargeInput{
		CustomerID: uuid.New(),
		Amount:     amount,
		Method:     "card",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.TransactionID, "mock_txn_"))
	assert.Equal(t, "mock", result.Provider)

	// Each charge gets a distinct transaction ID
	second, err := g.Charge(context.Background(), ChargeInput{CustomerID: uuid.New(), Amount: amount})
	require.NoError(t, err)
	assert.NotEqual(t, result.TransactionID, second.TransactionID)
}

func TestMockGateway_Refund(t *testing.T) {
	g := NewMockGateway()
	amount := valueobject.ZeroUSD()

	assert.NoError(t, g.Refund(context.Background(), "mock_txn_abc", amount))
	assert.Error(t, g.Refund(context.Background(), "", amount))
}
