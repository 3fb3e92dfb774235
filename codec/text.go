package codec

// Text converts between document text and generic values
// (nil, bool, numbers, string, []any, map[string]any).
type Text interface {
	Name() string
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
}
