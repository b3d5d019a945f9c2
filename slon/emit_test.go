package slon

import (
	"math"
	"testing"
	"time"
)

func TestEmit_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value *SValue
		want  string
	}{
		{"null", Null(), "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(42), "42"},
		{"negative int", Int(-7), "-7"},
		{"zero", Int(0), "0"},
		{"uint", Uint(18446744073709551615), "18446744073709551615"},
		{"float", Float(3.14), "3.14"},
		{"integral float keeps fraction", Float(2), "2.0"},
		{"small float", Float(0.5), "0.5"},
		{"string", Str("hello"), "'hello'"},
		{"string with space", Str("a b"), "'a b'"},
		{"string with quote", Str("don't"), `'don\'t'`},
		{"string with newline", Str("a\nb"), `'a\nb'`},
		{"string with tab", Str("a\tb"), `'a\tb'`},
		{"string with backslash", Str(`a\b`), `'a\\b'`},
		{"double quote passes through", Str(`say "hi"`), `'say "hi"'`},
		{"datetime", DateTime(time.Date(2024, 6, 1, 12, 30, 45, 123000000, time.UTC)), "2024-06-01/12:30:45.123"},
		{"datetime zero millis", DateTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), "2024-06-01/00:00:00.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Emit(tt.value)
			if err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmit_DateTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CEST", 2*3600)
	v := DateTime(time.Date(2024, 6, 1, 14, 30, 0, 0, loc))
	got, err := Emit(v)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != "2024-06-01/12:30:00.000" {
		t.Errorf("got %q", got)
	}
}

func TestEmit_Containers(t *testing.T) {
	tests := []struct {
		name  string
		value *SValue
		want  string
	}{
		{"empty array", Array(), "[]"},
		{"empty object", Object(), "()"},
		{"array", Array(Int(1), Int(2), Int(3)), "[1 | 2 | 3]"},
		{"array of mixed", Array(Int(1), Str("x"), Null()), "[1 | 'x' | null]"},
		{"object", Object(Entry("a", Int(1)), Entry("b", Int(2))), "(a: 1, b: 2)"},
		{"bare key", Object(Entry("a", Int(1))), "(a: 1)"},
		{"quoted key with space", Object(Entry("a b", Int(1))), "('a b': 1)"},
		{"quoted empty key", Object(Entry("", Int(1))), "('': 1)"},
		{"quoted key with delimiter", Object(Entry("a:b", Int(1))), `('a:b': 1)`},
		{
			"nested",
			Object(
				Entry("a", Array(Int(1), Object(Entry("b", Int(2))), Str("x"))),
				Entry("c", Null()),
			),
			"(a: [1 | (b: 2) | 'x'], c: null)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Emit(tt.value)
			if err != nil {
				t.Fatalf("Emit failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmit_KeyOrder(t *testing.T) {
	v := Object(Entry("b", Int(1)), Entry("a", Int(2)))

	got, err := Emit(v)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != "(b: 1, a: 2)" {
		t.Errorf("insertion order not preserved: %q", got)
	}

	got, err = EmitWithOptions(v, EmitOptions{SortKeys: true})
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != "(a: 2, b: 1)" {
		t.Errorf("sorted order wrong: %q", got)
	}
}

func TestEmit_NonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Emit(Float(f)); err == nil {
			t.Errorf("Emit(%v) should fail", f)
		}
	}

	// No partial output even when the bad value is nested.
	v := Array(Int(1), Float(math.NaN()))
	if out, err := Emit(v); err == nil {
		t.Errorf("expected error, got %q", out)
	}
}

func TestEmit_NilValue(t *testing.T) {
	got, err := Emit(nil)
	if err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if got != "null" {
		t.Errorf("got %q", got)
	}
}

func TestCanonicalHash(t *testing.T) {
	a := Object(Entry("x", Int(1)), Entry("y", Int(2)))
	b := Object(Entry("y", Int(2)), Entry("x", Int(1)))

	ha, err := CanonicalHash(a)
	if err != nil {
		t.Fatalf("CanonicalHash failed: %v", err)
	}
	hb, err := CanonicalHash(b)
	if err != nil {
		t.Fatalf("CanonicalHash failed: %v", err)
	}
	if ha != hb {
		t.Errorf("hashes differ for equal trees: %s vs %s", ha, hb)
	}

	hc, err := CanonicalHash(Object(Entry("x", Int(1))))
	if err != nil {
		t.Fatal(err)
	}
	if hc == ha {
		t.Error("distinct trees collided")
	}

	if _, err := CanonicalHash(Float(math.NaN())); err == nil {
		t.Error("expected error for non-finite")
	}
}
