package bookctx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNew_StartsUninitialized(t *testing.T) {
	c := New()
	require.Equal(t, Uninitialized, c.State())
	require.False(t, c.HasTimestamp())
	require.False(t, c.Ready())
}

func TestNeedsTimestampFrame_NoReferenceYet(t *testing.T) {
	c := New()
	require.True(t, c.NeedsTimestampFrame(1000))
}

func TestSetTimestamp_AdvancesToTimed(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	require.Equal(t, Timed, c.State())
	require.True(t, c.HasTimestamp())
	require.Equal(t, int64(1000), c.Timestamp())
}

func TestNeedsTimestampFrame_WithinRange(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	require.False(t, c.NeedsTimestampFrame(1000))
	require.False(t, c.NeedsTimestampFrame(1000+MaxTimestampOffset))
}

func TestNeedsTimestampFrame_GapTooLarge(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	require.True(t, c.NeedsTimestampFrame(1000+MaxTimestampOffset+1))
}

func TestNeedsTimestampFrame_BeforeReference(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	require.True(t, c.NeedsTimestampFrame(999))
}

func TestOffset_ComputesDelta(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	off, err := c.Offset(1500)
	require.NoError(t, err)
	require.Equal(t, uint16(500), off)
}

func TestOffset_ErrorsWithoutReference(t *testing.T) {
	c := New()
	_, err := c.Offset(1000)
	require.Error(t, err)
}

func TestOffset_ErrorsOutOfRange(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	_, err := c.Offset(1000 + MaxTimestampOffset + 1)
	require.Error(t, err)

	_, err = c.Offset(999)
	require.Error(t, err)
}

func TestEffectiveTimestamp_InverseOfOffset(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)

	off, err := c.Offset(1500)
	require.NoError(t, err)
	require.Equal(t, int64(1500), c.EffectiveTimestamp(off))
}

func TestApplySnapshot_AdvancesToReady(t *testing.T) {
	c := New()
	c.SetTimestamp(1000)
	c.ApplySnapshot(16, 20, decimal.RequireFromString("0.01"), decimal.RequireFromString("0.000001"))

	require.Equal(t, Ready, c.State())
	require.True(t, c.Ready())
	require.Equal(t, uint8(16), c.PBits())
	require.Equal(t, uint8(20), c.QBits())
	require.True(t, decimal.RequireFromString("0.01").Equal(c.TickSize()))
	require.True(t, decimal.RequireFromString("0.000001").Equal(c.LotSize()))
}

func TestApplySnapshot_FromUninitialized(t *testing.T) {
	// A SNAPSHOT as the very first frame (ts_off=0, legacy stream per the
	// spec's tolerant-reader note) must also reach Ready directly.
	c := New()
	c.ApplySnapshot(8, 8, decimal.RequireFromString("1"), decimal.RequireFromString("1"))
	require.Equal(t, Ready, c.State())
}

func TestFitsTicks(t *testing.T) {
	c := New()
	c.ApplySnapshot(10, 10, decimal.RequireFromString("0.01"), decimal.RequireFromString("0.01"))

	require.True(t, c.FitsTicks(10))
	require.True(t, c.FitsTicks(5))
	require.False(t, c.FitsTicks(11))
}

func TestFitsLots(t *testing.T) {
	c := New()
	c.ApplySnapshot(10, 12, decimal.RequireFromString("0.01"), decimal.RequireFromString("0.01"))

	require.True(t, c.FitsLots(12))
	require.False(t, c.FitsLots(13))
}

func TestStateString(t *testing.T) {
	require.Equal(t, "Uninitialized", Uninitialized.String())
	require.Equal(t, "Timed", Timed.String())
	require.Equal(t, "Ready", Ready.String())
}
