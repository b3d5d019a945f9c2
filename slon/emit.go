package slon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EmitOptions configures the writer.
type EmitOptions struct {
	// SortKeys emits object keys in lexicographic order instead of the
	// object's stored insertion order.
	SortKeys bool
}

// Emit converts a value tree to canonical SLON text. It fails on
// non-finite numbers and produces no partial output.
func Emit(v *SValue) (string, error) {
	return EmitWithOptions(v, EmitOptions{})
}

// EmitWithOptions converts a value tree with custom options.
func EmitWithOptions(v *SValue, opts EmitOptions) (string, error) {
	e := &emitter{opts: opts}
	if err := e.emit(v); err != nil {
		return "", err
	}
	return e.sb.String(), nil
}

type emitter struct {
	sb   strings.Builder
	opts EmitOptions
}

func (e *emitter) emit(v *SValue) error {
	if v.IsNull() {
		e.sb.WriteString("null")
		return nil
	}

	switch v.typ {
	case TypeBool:
		if v.boolVal {
			e.sb.WriteString("true")
		} else {
			e.sb.WriteString("false")
		}

	case TypeInt:
		e.sb.WriteString(strconv.FormatInt(v.intVal, 10))

	case TypeUint:
		e.sb.WriteString(strconv.FormatUint(v.uintVal, 10))

	case TypeFloat:
		return e.emitFloat(v.floatVal)

	case TypeStr:
		e.emitString(v.strVal)

	case TypeDateTime:
		e.sb.WriteString(v.timeVal.UTC().Format(dateTimeLayout))

	case TypeArray:
		return e.emitArray(v)

	case TypeObject:
		return e.emitObject(v)

	default:
		return fmt.Errorf("slon: cannot emit value of type %s", v.typ)
	}
	return nil
}

// emitFloat writes the shortest round-trip decimal form, forcing a
// fractional part so the literal reparses as a float, not an integer.
func (e *emitter) emitFloat(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("slon: cannot emit non-finite number")
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	e.sb.WriteString(s)
	return nil
}

// emitString writes a single-quoted string. Only backslash, the quote
// itself, and the control characters newline/CR/tab are escaped; all
// other characters, including double quotes, pass through literally.
func (e *emitter) emitString(s string) {
	e.sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			e.sb.WriteString(`\\`)
		case '\'':
			e.sb.WriteString(`\'`)
		case '\n':
			e.sb.WriteString(`\n`)
		case '\r':
			e.sb.WriteString(`\r`)
		case '\t':
			e.sb.WriteString(`\t`)
		default:
			e.sb.WriteByte(c)
		}
	}
	e.sb.WriteByte('\'')
}

func (e *emitter) emitArray(v *SValue) error {
	e.sb.WriteByte('[')
	for i, elem := range v.arrayVal {
		if i > 0 {
			e.sb.WriteString(" | ")
		}
		if err := e.emit(elem); err != nil {
			return err
		}
	}
	e.sb.WriteByte(']')
	return nil
}

func (e *emitter) emitObject(v *SValue) error {
	entries := v.objectVal
	if e.opts.SortKeys {
		entries = sortObjectEntries(entries)
	}

	e.sb.WriteByte('(')
	for i, entry := range entries {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		if keyNeedsQuoting(entry.Key) {
			e.emitString(entry.Key)
		} else {
			e.sb.WriteString(entry.Key)
		}
		e.sb.WriteString(": ")
		if err := e.emit(entry.Value); err != nil {
			return err
		}
	}
	e.sb.WriteByte(')')
	return nil
}

// sortObjectEntries returns a sorted copy of object entries.
func sortObjectEntries(entries []ObjectEntry) []ObjectEntry {
	if len(entries) <= 1 {
		return entries
	}

	sorted := make([]ObjectEntry, len(entries))
	copy(sorted, entries)

	// Simple insertion sort (good for small lists)
	for i := 1; i < len(sorted); i++ {
		j := i
		for j > 0 && sorted[j].Key < sorted[j-1].Key {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			j--
		}
	}

	return sorted
}

// ============================================================
// Canonical Hash
// ============================================================

// CanonicalHash returns a hash of the sorted-keys canonical form, giving a
// stable identity for a value tree regardless of object insertion order.
func CanonicalHash(v *SValue) (string, error) {
	canonical, err := EmitWithOptions(v, EmitOptions{SortKeys: true})
	if err != nil {
		return "", err
	}

	// FNV-1a for speed (not cryptographic)
	h := uint64(14695981039346656037)
	for i := 0; i < len(canonical); i++ {
		h ^= uint64(canonical[i])
		h *= 1099511628211
	}

	return fmt.Sprintf("%016x", h), nil
}
