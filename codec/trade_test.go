package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-md/arthur/errs"
)

func TestEncodeDecodeTrade_NumericID(t *testing.T) {
	tickSize := dec("0.01")
	lotSize := dec("0.00001")

	payload, err := EncodeTrade(dec("100000.52"), dec("0.52"), true, NumericTradeID(big.NewInt(26558224)), tickSize, lotSize, 32, 32)
	require.NoError(t, err)

	got, err := DecodeTrade(payload, 32, 32, tickSize, lotSize)
	require.NoError(t, err)

	require.True(t, dec("100000.52").Equal(got.Price))
	require.True(t, dec("0.52").Equal(got.Qty))
	require.True(t, got.MakerIsBid)
	require.True(t, got.ID.Numeric)
	require.Equal(t, 0, big.NewInt(26558224).Cmp(got.ID.IntID))
}

func TestEncodeDecodeTrade_StringID(t *testing.T) {
	tickSize := dec("0.01")
	lotSize := dec("0.00001")
	id := "9c5d7509-3c2b-4769-81fe-9915f5dd9515"

	payload, err := EncodeTrade(dec("102000.52"), dec("0.02345"), false, StringTradeID(id), tickSize, lotSize, 32, 32)
	require.NoError(t, err)

	got, err := DecodeTrade(payload, 32, 32, tickSize, lotSize)
	require.NoError(t, err)

	require.False(t, got.MakerIsBid)
	require.False(t, got.ID.Numeric)
	require.Equal(t, id, got.ID.StrID)
}

func TestEncodeTrade_OverflowTicks(t *testing.T) {
	tickSize := dec("0.01")
	lotSize := dec("0.00001")

	_, err := EncodeTrade(dec("10000.00"), dec("1"), true, NumericTradeID(big.NewInt(1)), tickSize, lotSize, 8, 32)

	var oe *errs.OverflowError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, "ticks", oe.Kind)
}

func TestEncodeTrade_OverflowLots(t *testing.T) {
	tickSize := dec("0.01")
	lotSize := dec("0.00001")

	_, err := EncodeTrade(dec("1.00"), dec("1000"), true, NumericTradeID(big.NewInt(1)), tickSize, lotSize, 32, 8)

	var oe *errs.OverflowError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, "lots", oe.Kind)
}
