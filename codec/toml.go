package codec

import (
	"bytes"
	"errors"

	"github.com/BurntSushi/toml"
)

// ErrTOMLRoot is returned when encoding a value that is not a table.
var ErrTOMLRoot = errors.New("codec: toml document root must be a table")

// TOML returns a Text codec backed by BurntSushi/toml. TOML documents are
// always tables, so Unmarshal yields map[string]any and Marshal requires one.
func TOML() Text { return tomlText{} }

type tomlText struct{}

func (tomlText) Name() string { return "toml" }

func (tomlText) Unmarshal(data []byte) (any, error) {
	var m map[string]any
	if _, err := toml.Decode(string(data), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func (tomlText) Marshal(v any) ([]byte, error) {
	if _, ok := v.(map[string]any); !ok {
		return nil, ErrTOMLRoot
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
