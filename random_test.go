// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jvalue_test

import (
	"testing"

	"github.com/creachadair/jvalue"
	"github.com/creachadair/jvalue/internal/testutil"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/tailscale/hujson"
)

func TestRandomDocuments(t *testing.T) {
	g := testutil.NewDocGen(20211019)
	for i := 0; i < 200; i++ {
		doc, want := g.Document()
		v, err := jvalue.Parse(doc)
		if err != nil {
			t.Fatalf("Document %d: Parse %#q: %v", i, doc, err)
		}
		got := testutil.Normalize(jvalue.Interface(v))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Document %d: %#q\n(-want, +got)\n%s", i, doc, diff)
		}

		// Cross-check against a standard decoder.
		var std any
		if err := json.Unmarshal([]byte(doc), &std); err != nil {
			t.Fatalf("Document %d: Unmarshal: %v", i, err)
		}
		if diff := cmp.Diff(std, got); diff != "" {
			t.Errorf("Document %d: decoders disagree (-std, +got)\n%s", i, diff)
		}
	}
}

// TestStandard checks that every input the parser accepts is standard JSON.
// HuJSON is a superset of JSON, and reports whether a value uses any of its
// extensions.
func TestStandard(t *testing.T) {
	inputs := []string{
		`{"key-n": 101, "key-o": {"inner key": "inner value"}, "key-l": ["list value"]}`,
		`["hello", 123, null, true, false]`,
		`{"a": [1, 2.5, -3e4, "\u00e9\n"], "b": {}}`,
		"  [ ]  ",
		`{"key": null }`,
		// The following must be rejected by both.
		`[1, 2,]`,
		`{"a": 1,}`,
		`[1] // comment`,
		`/* x */ 1`,
	}
	g := testutil.NewDocGen(1066)
	for i := 0; i < 50; i++ {
		doc, _ := g.Document()
		inputs = append(inputs, doc)
	}

	for _, input := range inputs {
		if _, err := jvalue.Parse(input); err != nil {
			t.Logf("Parse %#q: rejected: %v", input, err)
			continue
		}
		hv, err := hujson.Parse([]byte(input))
		if err != nil {
			t.Errorf("Parse %#q: accepted, but hujson reports: %v", input, err)
		} else if !hv.IsStandard() {
			t.Errorf("Parse %#q: accepted non-standard JSON", input)
		}
	}
}
