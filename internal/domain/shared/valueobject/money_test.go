package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(19.99), USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.Equal(t, "19.99", m.StringFixed(2))

	_, err = NewMoney(decimal.Zero, "")
	assert.Error(t, err)
}

func TestMoneyAdd(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b := NewMoneyUSD(decimal.NewFromInt(5))

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "15.00", sum.StringFixed(2))

	eur, _ := NewMoney(decimal.NewFromInt(5), EUR)
	_, err = a.Add(eur)
	assert.Error(t, err)
}

func TestMoneyMultiplyByInt(t *testing.T) {
	price, err := NewMoneyUSDFromString("9.99")
	require.NoError(t, err)

	total := price.MultiplyByInt(3)
	assert.Equal(t, "29.97", total.StringFixed(2))
}

func TestMoneySubtract(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b := NewMoneyUSD(decimal.NewFromInt(3))

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "7.00", diff.StringFixed(2))
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyUSD(decimal.NewFromInt(10))
	b := NewMoneyUSD(decimal.NewFromInt(20))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	gte, err := b.GreaterThanOrEqual(a)
	require.NoError(t, err)
	assert.True(t, gte)

	assert.True(t, a.Equals(NewMoneyUSD(decimal.NewFromInt(10))))
	assert.False(t, a.Equals(b))
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, _ := NewMoneyUSDFromString("42.50")

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("12.34"))
	assert.Equal(t, DefaultCurrency, m.Currency())
	assert.Equal(t, "12.34", m.StringFixed(2))

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(42))
}

func TestZeroUSD(t *testing.T) {
	z := ZeroUSD()
	assert.True(t, z.IsZero())
	assert.False(t, z.IsPositive())
	assert.False(t, z.IsNegative())
}
