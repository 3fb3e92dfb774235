package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML returns a Text codec backed by gopkg.in/yaml.v3. Decoded mappings are
// normalized into map[string]any so they can be walked like JSON objects.
func YAML() Text { return yamlText{} }

type yamlText struct{}

func (yamlText) Name() string { return "yaml.v3" }

func (yamlText) Unmarshal(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return yamlNormalizeValue(v), nil
}

func (yamlText) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// yamlNormalizeValue converts YAML-decoded values (which may contain
// map[any]any) into JSON-like values recursively.
func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = yamlNormalizeValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
