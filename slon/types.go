package slon

import (
	"fmt"
	"time"
)

// SType represents SLON value types.
type SType uint8

const (
	TypeNull SType = iota
	TypeBool
	TypeInt
	TypeUint // Integers beyond int64 range that still fit uint64
	TypeFloat
	TypeStr
	TypeArray
	TypeObject
	TypeDateTime
)

// String returns the type name.
func (t SType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeUint:
		return "uint"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	case TypeDateTime:
		return "datetime"
	default:
		return "unknown"
	}
}

// SValue represents a SLON value.
type SValue struct {
	typ SType

	// Scalar values (only one valid based on typ)
	boolVal  bool
	intVal   int64
	uintVal  uint64
	floatVal float64
	strVal   string
	timeVal  time.Time

	// Container values
	arrayVal  []*SValue
	objectVal []ObjectEntry
}

// ObjectEntry represents a key-value pair in an object.
// Entries keep the order in which keys were first inserted.
type ObjectEntry struct {
	Key   string
	Value *SValue
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *SValue {
	return &SValue{typ: TypeNull}
}

// Bool creates a boolean value.
func Bool(v bool) *SValue {
	return &SValue{typ: TypeBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *SValue {
	return &SValue{typ: TypeInt, intVal: v}
}

// Uint creates an unsigned integer value for magnitudes beyond int64.
func Uint(v uint64) *SValue {
	return &SValue{typ: TypeUint, uintVal: v}
}

// Float creates a float value. Non-finite floats are rejected at
// serialization time, never silently emitted.
func Float(v float64) *SValue {
	return &SValue{typ: TypeFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *SValue {
	return &SValue{typ: TypeStr, strVal: v}
}

// DateTime creates a datetime value. The instant is normalized to UTC and
// truncated to millisecond resolution.
func DateTime(v time.Time) *SValue {
	return &SValue{typ: TypeDateTime, timeVal: v.UTC().Truncate(time.Millisecond)}
}

// Array creates an array value.
func Array(values ...*SValue) *SValue {
	return &SValue{typ: TypeArray, arrayVal: values}
}

// Object creates an object value from entries. Later duplicate keys
// overwrite earlier ones, keeping the first occurrence's slot.
func Object(entries ...ObjectEntry) *SValue {
	v := &SValue{typ: TypeObject}
	for _, e := range entries {
		v.Set(e.Key, e.Value)
	}
	return v
}

// Entry creates an ObjectEntry for use in Object construction.
func Entry(key string, value *SValue) ObjectEntry {
	return ObjectEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Type returns the value type.
func (v *SValue) Type() SType {
	if v == nil {
		return TypeNull
	}
	return v.typ
}

// IsNull returns true if this is a null value.
func (v *SValue) IsNull() bool {
	return v == nil || v.typ == TypeNull
}

// AsBool returns the boolean value.
func (v *SValue) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeBool {
		return false, fmt.Errorf("slon: expected bool, got %s", v.typ)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *SValue) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeInt {
		return 0, fmt.Errorf("slon: expected int, got %s", v.typ)
	}
	return v.intVal, nil
}

// AsUint returns the unsigned integer value.
func (v *SValue) AsUint() (uint64, error) {
	if v == nil {
		return 0, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeUint {
		return 0, fmt.Errorf("slon: expected uint, got %s", v.typ)
	}
	return v.uintVal, nil
}

// AsFloat returns the float value.
func (v *SValue) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeFloat {
		return 0, fmt.Errorf("slon: expected float, got %s", v.typ)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *SValue) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeStr {
		return "", fmt.Errorf("slon: expected string, got %s", v.typ)
	}
	return v.strVal, nil
}

// AsDateTime returns the datetime value.
func (v *SValue) AsDateTime() (time.Time, error) {
	if v == nil {
		return time.Time{}, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeDateTime {
		return time.Time{}, fmt.Errorf("slon: expected datetime, got %s", v.typ)
	}
	return v.timeVal, nil
}

// AsArray returns the array elements.
func (v *SValue) AsArray() ([]*SValue, error) {
	if v == nil {
		return nil, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeArray {
		return nil, fmt.Errorf("slon: expected array, got %s", v.typ)
	}
	return v.arrayVal, nil
}

// AsObject returns the object entries in insertion order.
func (v *SValue) AsObject() ([]ObjectEntry, error) {
	if v == nil {
		return nil, fmt.Errorf("slon: nil value")
	}
	if v.typ != TypeObject {
		return nil, fmt.Errorf("slon: expected object, got %s", v.typ)
	}
	return v.objectVal, nil
}

// Len returns the length of an array or object.
func (v *SValue) Len() int {
	if v == nil {
		return 0
	}
	switch v.typ {
	case TypeArray:
		return len(v.arrayVal)
	case TypeObject:
		return len(v.objectVal)
	default:
		return 0
	}
}

// Get returns an object field by key, or nil if absent or not an object.
func (v *SValue) Get(key string) *SValue {
	if v == nil || v.typ != TypeObject {
		return nil
	}
	for _, e := range v.objectVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of an array.
func (v *SValue) Index(i int) (*SValue, error) {
	if v == nil || v.typ != TypeArray {
		return nil, fmt.Errorf("slon: not an array")
	}
	if i < 0 || i >= len(v.arrayVal) {
		return nil, fmt.Errorf("slon: index %d out of bounds (len=%d)", i, len(v.arrayVal))
	}
	return v.arrayVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets an object field. A duplicate key overwrites the value in the
// first occurrence's slot; a new key appends.
func (v *SValue) Set(key string, val *SValue) {
	if v.typ != TypeObject {
		panic("slon: cannot set on non-object")
	}
	for i := range v.objectVal {
		if v.objectVal[i].Key == key {
			v.objectVal[i].Value = val
			return
		}
	}
	v.objectVal = append(v.objectVal, ObjectEntry{Key: key, Value: val})
}

// Append adds a value to an array.
func (v *SValue) Append(val *SValue) {
	if v.typ != TypeArray {
		panic("slon: cannot append to non-array")
	}
	v.arrayVal = append(v.arrayVal, val)
}

// ============================================================
// Numeric Coercion Helpers
// ============================================================

// Number returns a numeric value as float64 if int, uint, or float.
func (v *SValue) Number() (float64, bool) {
	if v == nil {
		return 0, false
	}
	switch v.typ {
	case TypeInt:
		return float64(v.intVal), true
	case TypeUint:
		return float64(v.uintVal), true
	case TypeFloat:
		return v.floatVal, true
	default:
		return 0, false
	}
}

// IsNumeric returns true if int, uint, or float.
func (v *SValue) IsNumeric() bool {
	if v == nil {
		return false
	}
	return v.typ == TypeInt || v.typ == TypeUint || v.typ == TypeFloat
}

// ============================================================
// Equality
// ============================================================

// Equal reports structural equality of two value trees. Numbers compare
// within their tier (an int 1 is not equal to a float 1.0), datetimes by
// instant, objects entry by entry in order.
func Equal(a, b *SValue) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case TypeBool:
		return a.boolVal == b.boolVal
	case TypeInt:
		return a.intVal == b.intVal
	case TypeUint:
		return a.uintVal == b.uintVal
	case TypeFloat:
		return a.floatVal == b.floatVal
	case TypeStr:
		return a.strVal == b.strVal
	case TypeDateTime:
		return a.timeVal.Equal(b.timeVal)
	case TypeArray:
		if len(a.arrayVal) != len(b.arrayVal) {
			return false
		}
		for i := range a.arrayVal {
			if !Equal(a.arrayVal[i], b.arrayVal[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(a.objectVal) != len(b.objectVal) {
			return false
		}
		for i := range a.objectVal {
			if a.objectVal[i].Key != b.objectVal[i].Key {
				return false
			}
			if !Equal(a.objectVal[i].Value, b.objectVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
