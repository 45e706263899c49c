package money

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFormatBRL(t *testing.T) {
	require.Equal(t, "R$ 1.234,56", FormatBRL(decimal.RequireFromString("1234.56")))
	require.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	require.Equal(t, "R$ 200,50", FormatBRL(decimal.RequireFromString("200.5")))
	require.Equal(t, "R$ 1.000.000,00", FormatBRL(decimal.NewFromInt(1000000)))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "07/03/2025", FormatDate(d))
}
