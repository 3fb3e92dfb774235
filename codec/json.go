package codec

import (
	j "github.com/goccy/go-json"
)

// JSON returns a Text codec backed by goccy/go-json.
func JSON() Text { return jsonText{} }

type jsonText struct{}

func (jsonText) Name() string { return "go-json" }

func (jsonText) Unmarshal(data []byte) (any, error) {
	var v any
	if err := j.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (jsonText) Marshal(v any) ([]byte, error) { return j.Marshal(v) }
