package encode

import "github.com/katalvlaran/hashi/pbenc"

// options holds Builder configuration. The zero value is not meant to be
// used directly; see defaultOptions.
type options struct {
	pbEncoder pbenc.Encoder
}

// Option configures a Builder before encoding.
type Option func(*options)

// WithPBEncoder overrides the pseudo-Boolean equality encoder used for
// degree constraints. The default is pbenc.SequentialCounter{}.
func WithPBEncoder(enc pbenc.Encoder) Option {
	return func(o *options) { o.pbEncoder = enc }
}

func defaultOptions() options {
	return options{pbEncoder: pbenc.SequentialCounter{}}
}
