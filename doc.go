// Package axjson validates and transforms JSON-like values against
// declarative schemas.
//
// A schema is an ordinary Go value: nil matches null, a map[string]any is a
// record whose fields are schemas, a []any is a fixed-length tuple, strings,
// numbers and booleans are constants, and anything implementing Validator is
// a node (the dsl package builds them). The same schema drives both
// directions of a round trip:
//
//	user := axjson.MustSchema(axjson.Record{
//		"id":   dsl.Key("ID", dsl.Integer()),
//		"name": dsl.String().NonEmpty(),
//		"tags": dsl.Array(dsl.String()),
//	})
//
//	v, err := axjson.Parse(user, `{"ID":1,"name":"a","tags":[]}`)   // {"id":1,...}
//	s, err := axjson.Stringify(user, v)                                // {"ID":1,...}
//
// Failures are *ValidationError values carrying the path, a stable kind
// string and a description. Malformed schemas are reported by Schema,
// MustSchema and Compile as *InvalidSchemaError.
//
// Layout:
//   - The root package holds the walker, the error model and the round-trip API.
//   - dsl/ holds leaf chains and structural combinators.
//   - codec/ holds date parsing and the JSON/YAML/TOML text codecs.
//   - i18n/ holds error descriptions.
//   - examples/user shows a typed wrapper over a schema; benchmarks/ measures it.
package axjson
