// Package dsl builds axjson validator nodes.
//
// Overview
//   - Leaf chains: String()/Number()/Integer()/Boolean()/Date() start an
//     immutable chain. Every method returns a new chain that runs the previous
//     checks first; the chain value itself is an axjson.Validator.
//   - Convert(f) on a scalar chain ends the chain and yields a plain node whose
//     result is f(checked value).
//   - Structural combinators: Nullable/Optional (and their Unwrap* variants),
//     Array, Union, Intersection, Any/Unknown, Null/Undefined.
//   - Object(fragment)/Dictionary(elem): chains over records and arbitrary-keyed
//     maps with whole-value Refine and Convert (and Map/MapKeys for
//     dictionaries).
//   - Key(label, schema): tags a record field with its external (wire) name.
//
// Nested fragments passed to combinators are lifted once, when the node is
// built, and reused by every validation call. Nodes hold no per-call state and
// are safe for concurrent use.
//
// Predicates passed to Refine return a bool. A predicate that panics is not
// recovered.
//
// Example
//
//	var point = axjson.Record{
//	    "x": dsl.Key("X", dsl.Number()),
//	    "y": dsl.Key("Y", dsl.Number().MinValue(0)),
//	    "label": dsl.Optional(dsl.String().NonEmpty().MaxLength(32)),
//	}
//
//	v, err := axjson.Validate(point, map[string]any{"X": 1.0, "Y": 2.0})
//	// v == map[string]any{"x": 1.0, "y": 2.0}
//
// File layout (roles)
//   - chain.go: step composition shared by all chains.
//   - string.go/number.go/boolean.go/date.go: leaf chains.
//   - structural.go: nullable/optional/array/union/intersection.
//   - literal.go: any/unknown/null/undefined/key.
//   - object.go/dictionary.go: record and map chains.
package dsl
