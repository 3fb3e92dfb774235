package axjson

import (
	"sync"

	"github.com/reoring/axjson/codec"
)

var (
	jsonCodecMu      sync.RWMutex
	currentJSONCodec = codec.JSON()
)

// SetJSONCodec replaces the process-wide JSON text codec used by Parse and
// Stringify; nil values are ignored.
func SetJSONCodec(c codec.Text) {
	if c == nil {
		return
	}
	jsonCodecMu.Lock()
	currentJSONCodec = c
	jsonCodecMu.Unlock()
}

// UseDefaultJSONCodec restores the default goccy/go-json backed codec.
func UseDefaultJSONCodec() {
	jsonCodecMu.Lock()
	currentJSONCodec = codec.JSON()
	jsonCodecMu.Unlock()
}

func getJSONCodec() codec.Text {
	jsonCodecMu.RLock()
	c := currentJSONCodec
	jsonCodecMu.RUnlock()
	return c
}
