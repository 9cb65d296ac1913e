//go:build go1.24

package jvalue_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/internal/testutil"
	"github.com/goccy/go-json"
)

func benchInput() string {
	g := testutil.NewDocGen(1)
	g.MaxWidth = 10
	docs := make([]string, 100)
	for i := range docs {
		docs[i], _ = g.Document()
	}
	return "[" + strings.Join(docs, ",\n") + "]"
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Unmarshal", func(b *testing.B) {
		data := []byte(input)
		b.SetBytes(int64(len(data)))
		for b.Loop() {
			var v any
			if err := json.Unmarshal(data, &v); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		b.SetBytes(int64(len(input)))
		for b.Loop() {
			if _, err := jvalue.Parse(input); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
