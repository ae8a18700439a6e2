package datastore

import "github.com/ling-corp/ziggurat/internal/options"

// openConfig holds Open's resolved configuration.
type openConfig struct {
	partial bool
}

// Option configures Open (spec.md §6.2: "Format errors propagate to the
// datastore open call, which returns a partial result...or refuses to
// open at all, at the implementer's discretion").
type Option = options.Option[*openConfig]

// WithPartialOpen makes Open skip containers that fail to map or wire
// instead of aborting the whole datastore open. The default is strict:
// any single container failure fails Open.
func WithPartialOpen() Option {
	return options.NoError[*openConfig](func(c *openConfig) { c.partial = true })
}

func resolveOptions(opts []Option) (*openConfig, error) {
	cfg := &openConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
