package arthur

import (
	"errors"

	"github.com/arthur-md/arthur/bookctx"
	"github.com/arthur-md/arthur/internal/options"
)

type config struct {
	ctx *bookctx.Context
}

// Option configures a Writer or Reader at construction time.
type Option = options.Option[*config]

// WithContext seeds a Writer or Reader with an already-populated
// bookctx.Context instead of starting Uninitialized. This is for resuming
// work against a stream whose prefix was already written or read
// elsewhere — the context the caller supplies must reflect that prefix
// exactly, since nothing re-derives it from the stream itself.
func WithContext(ctx *bookctx.Context) Option {
	return options.New(func(c *config) error {
		if ctx == nil {
			return errors.New("arthur: WithContext requires a non-nil context")
		}

		c.ctx = ctx

		return nil
	})
}

func newConfig(opts []Option) (*config, error) {
	c := &config{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	if c.ctx == nil {
		c.ctx = bookctx.New()
	}

	return c, nil
}
