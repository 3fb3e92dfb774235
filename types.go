package axjson

import (
	"time"

	"github.com/reoring/axjson/codec"
)

// Options configures a single top-level call.
type Options struct {
	// Now supplies the current instant for Past/Future date checks. It is
	// called on every check. nil means time.Now.
	Now func() time.Time
	// Codec encodes and decodes text for Parse/Stringify. nil means the
	// process-wide JSON codec (see SetJSONCodec).
	Codec codec.Text
}

func (o Options) textCodec() codec.Text {
	if o.Codec != nil {
		return o.Codec
	}
	return getJSONCodec()
}
