package bookctx

// State is the writer/reader state machine driven entirely by TIMESTAMP and
// SNAPSHOT frames already present on the wire.
type State uint8

const (
	// Uninitialized is the state at stream open: no timestamp reference and
	// no snapshot widths are known yet. Only a TIMESTAMP frame (or a
	// SNAPSHOT, which also carries ts_off=0 against an implicit zero
	// reference) may be written or read in this state.
	Uninitialized State = iota
	// Timed means a TIMESTAMP frame has been seen; ts_off can now be
	// computed, but no SNAPSHOT has set pbits/qbits/tick_size/lot_size, so
	// diffs, removals, and trades still cannot be encoded or decoded.
	Timed
	// Ready means a SNAPSHOT frame has been seen; every message kind can
	// now be written or read.
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Timed:
		return "Timed"
	case Ready:
		return "Ready"
	default:
		return "Unknown"
	}
}
