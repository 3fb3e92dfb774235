package axjson

import (
	"time"

	"github.com/reoring/axjson/codec"
)

// encodable prepares a validated value for a text codec: dates become their
// canonical UTC string, Undefined record entries are dropped and Undefined
// sequence elements (or an Undefined root) become null.
func encodable(v any) any {
	switch t := v.(type) {
	case UndefinedType:
		return nil
	case time.Time:
		return codec.FormatDate(t)
	case *time.Time:
		if t == nil {
			return nil
		}
		return codec.FormatDate(*t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			if IsUndefined(vv) {
				continue
			}
			out[k] = encodable(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = encodable(vv)
		}
		return out
	default:
		return v
	}
}
