package codec

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestEncodeDecodeSnapshot_EmptyBook(t *testing.T) {
	payload, widths, err := EncodeSnapshot(nil, nil, dec("0.01"), dec("0.000001"), false, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	got, err := DecodeSnapshot(payload)
	require.NoError(t, err)

	require.Empty(t, got.Bids)
	require.Empty(t, got.Asks)
	require.False(t, got.Redundant)
	require.Equal(t, widths.PBits, got.Widths.PBits)
	require.Equal(t, widths.QBits, got.Widths.QBits)
	require.True(t, dec("0.01").Equal(got.Widths.TickSize))
	require.True(t, dec("0.000001").Equal(got.Widths.LotSize))
}

func TestEncodeDecodeSnapshot_WithLevels(t *testing.T) {
	bids := []Level{
		{Price: dec("100000.52"), Qty: dec("1.5")},
		{Price: dec("99999.00"), Qty: dec("0.25")},
	}
	asks := []Level{
		{Price: dec("100001.00"), Qty: dec("2.0")},
	}

	payload, _, err := EncodeSnapshot(bids, asks, dec("0.01"), dec("0.01"), true, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	got, err := DecodeSnapshot(payload)
	require.NoError(t, err)

	require.True(t, got.Redundant)
	require.Len(t, got.Bids, 2)
	require.Len(t, got.Asks, 1)

	for i, b := range bids {
		require.True(t, b.Price.Equal(got.Bids[i].Price), "bid %d price", i)
		require.True(t, b.Qty.Equal(got.Bids[i].Qty), "bid %d qty", i)
	}

	require.True(t, asks[0].Price.Equal(got.Asks[0].Price))
	require.True(t, asks[0].Qty.Equal(got.Asks[0].Qty))
}

func TestEncodeSnapshot_WidensForMinPriceAndQty(t *testing.T) {
	// A tiny book whose overflow-recovery caller wants room for a much
	// larger incoming price/qty pair.
	bids := []Level{{Price: dec("1.00"), Qty: dec("1")}}

	_, narrow, err := EncodeSnapshot(bids, nil, dec("0.01"), dec("1"), false, decimal.Zero, decimal.Zero)
	require.NoError(t, err)

	_, widened, err := EncodeSnapshot(bids, nil, dec("0.01"), dec("1"), false, dec("999999999.99"), dec("1"))
	require.NoError(t, err)

	require.Greater(t, widened.PBits, narrow.PBits)
}

func TestEncodeSnapshot_PrecisionErrorOnBadTickSize(t *testing.T) {
	bids := []Level{{Price: dec("1.005"), Qty: dec("1")}}
	_, _, err := EncodeSnapshot(bids, nil, dec("0.01"), dec("1"), false, decimal.Zero, decimal.Zero)
	require.Error(t, err)
}

func TestDecodeSnapshot_TruncatedHeader(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0x00, 0x00})
	require.Error(t, err)
}
