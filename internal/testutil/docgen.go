// Package testutil defines support code for unit tests.
package testutil

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/goccy/go-json"
)

// oddStrings are string values that exercise escaping and non-ASCII text.
var oddStrings = []string{
	"", " ", "tab\there", `quote"d`, `back\slash`, "line\nfeed", "<a & b>",
	"naïve café", "日本語", "emoji 😀", "ctl\x01\x1f", " ", "/slash/",
}

// A DocGen generates random JSON documents. Values are represented as plain
// Go data, in the form returned by jvalue.Interface, except that all numbers
// are float64.
type DocGen struct {
	f *gofakeit.Faker

	MaxDepth int // maximum nesting of containers
	MaxWidth int // maximum members or elements per container
}

// NewDocGen constructs a generator with the given random seed.
func NewDocGen(seed int64) *DocGen {
	return &DocGen{f: gofakeit.New(seed), MaxDepth: 4, MaxWidth: 6}
}

// Document returns the JSON encoding of a random value, and the value.
func (g *DocGen) Document() (string, any) {
	v := g.value(0)
	bits, err := json.Marshal(v)
	if err != nil {
		panic(err) // cannot happen for the types generated
	}
	return string(bits), v
}

func (g *DocGen) value(depth int) any {
	n := 6
	if depth < g.MaxDepth {
		n = 8
	}
	switch g.f.IntRange(0, n-1) {
	case 0:
		return nil
	case 1:
		return g.f.Bool()
	case 2:
		return float64(g.f.IntRange(-1000000, 1000000))
	case 3:
		return g.f.Float64Range(-1e6, 1e6)
	case 4:
		return g.f.Sentence(g.f.IntRange(1, 6))
	case 5:
		return g.f.RandomString(oddStrings)
	case 6:
		arr := make([]any, g.f.IntRange(0, g.MaxWidth))
		for i := range arr {
			arr[i] = g.value(depth + 1)
		}
		return arr
	default:
		obj := make(map[string]any)
		for i, n := 0, g.f.IntRange(0, g.MaxWidth); i < n; i++ {
			obj[g.f.Word()] = g.value(depth + 1)
		}
		return obj
	}
}

// Normalize converts the numbers in v, a value of the form returned by
// jvalue.Interface, to float64 so that it can be compared to the output of
// Document or of a standard JSON decoder.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elt := range t {
			out[k] = Normalize(elt)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = Normalize(elt)
		}
		return out
	case int64:
		return float64(t)
	default:
		return v
	}
}
