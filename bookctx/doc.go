// Package bookctx implements the serialization context: the small piece of
// state a Writer and a Reader each keep in lock-step over one stream, so
// that frames after a SNAPSHOT or TIMESTAMP can be decoded relative to it
// instead of repeating it.
//
// A Context tracks the current timestamp reference, the bit widths used to
// pack ticks (pbits) and lots (qbits) in non-snapshot frames, and the
// tick_size/lot_size needed to rescale those integers back to decimals. It
// also tracks which of those fields are actually populated yet, via a small
// state machine mirroring format.MessageType's closed-enum style:
// Uninitialized (nothing seen) -> Timed (a TIMESTAMP frame has set the
// reference epoch) -> Ready (a SNAPSHOT frame has set the widths and
// sizes). Every non-snapshot message requires Ready; a stream is always
// readable from its start because both transitions are driven entirely by
// frames already on the wire.
package bookctx
