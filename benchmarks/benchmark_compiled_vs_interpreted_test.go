package benchmarks_test

import (
	"fmt"
	"testing"

	"github.com/reoring/axjson"
	d "github.com/reoring/axjson/dsl"
	u "github.com/reoring/axjson/examples/user"
)

// --- Fixtures ---

func orderFragment() any {
	return axjson.Record{
		"id":       d.Key("ID", d.String().UUID()),
		"customer": d.String().NonEmpty(),
		"lines": d.Array(axjson.Record{
			"sku": d.String().MinLength(3),
			"qty": d.Integer().MinValue(1),
		}),
		"status": d.Union("open", "paid", "shipped"),
		"note":   d.Optional(d.Nullable(d.String())),
	}
}

func orderValue(lines int) map[string]any {
	ls := make([]any, lines)
	for i := range ls {
		ls[i] = map[string]any{"sku": fmt.Sprintf("SKU-%03d", i), "qty": float64(i + 1)}
	}
	return map[string]any{
		"ID":       "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"customer": "alice",
		"lines":    ls,
		"status":   "paid",
	}
}

// --- Compiled ---

func Benchmark_Compiled_Order_Small(b *testing.B)  { benchCompiled(b, 2) }
func Benchmark_Compiled_Order_Medium(b *testing.B) { benchCompiled(b, 100) }

func benchCompiled(b *testing.B, lines int) {
	node, err := axjson.Compile(orderFragment())
	if err != nil {
		b.Fatalf("compile: %v", err)
	}
	v := orderValue(lines)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := axjson.Validate(node, v); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Interpreted (raw fragment lifted on every call) ---

func Benchmark_Interpreted_Order_Small(b *testing.B)  { benchInterpreted(b, 2) }
func Benchmark_Interpreted_Order_Medium(b *testing.B) { benchInterpreted(b, 100) }

func benchInterpreted(b *testing.B, lines int) {
	frag := orderFragment()
	v := orderValue(lines)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := axjson.Validate(frag, v); err != nil {
			b.Fatal(err)
		}
	}
}

// --- Typed wrapper (examples/user) ---

func Benchmark_User_Parse(b *testing.B) {
	data := `{"name":"Alice","active":true,"created_at":"2023-03-04T05:06:07Z"}`
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}
