package slon

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// ============================================================
// Native Bridge
// ============================================================
//
// Converts between plain Go values and *SValue. Go maps are unordered, so
// map keys are sorted during conversion to keep output deterministic;
// callers that need a specific entry order build objects from []ObjectEntry.

// FromNative converts a Go value to an SValue.
func FromNative(v any) (*SValue, error) {
	if v == nil {
		return Null(), nil
	}

	switch val := v.(type) {
	case *SValue:
		return val, nil

	case bool:
		return Bool(val), nil

	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil

	case uint:
		return fromNativeUint(uint64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return fromNativeUint(val), nil

	case float32:
		return fromNativeFloat(float64(val))
	case float64:
		return fromNativeFloat(val)

	case string:
		return Str(val), nil

	case time.Time:
		return DateTime(val), nil

	case []any:
		items := make([]*SValue, 0, len(val))
		for i, elem := range val {
			sv, err := FromNative(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			items = append(items, sv)
		}
		return Array(items...), nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]ObjectEntry, 0, len(val))
		for _, k := range keys {
			sv, err := FromNative(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			entries = append(entries, ObjectEntry{Key: k, Value: sv})
		}
		return Object(entries...), nil

	case []ObjectEntry:
		return Object(val...), nil

	default:
		return nil, fmt.Errorf("slon: unsupported native type %T", v)
	}
}

func fromNativeUint(u uint64) *SValue {
	if u > math.MaxInt64 {
		return Uint(u)
	}
	return Int(int64(u))
}

func fromNativeFloat(f float64) (*SValue, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("slon: non-finite number is not representable")
	}
	return Float(f), nil
}

// ToNative converts an SValue to plain Go values: objects become
// map[string]any (entry order is lost by the host type), arrays []any,
// datetimes time.Time in UTC.
func ToNative(v *SValue) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	switch v.typ {
	case TypeBool:
		return v.boolVal, nil

	case TypeInt:
		return v.intVal, nil

	case TypeUint:
		return v.uintVal, nil

	case TypeFloat:
		return v.floatVal, nil

	case TypeStr:
		return v.strVal, nil

	case TypeDateTime:
		return v.timeVal, nil

	case TypeArray:
		items := make([]any, 0, len(v.arrayVal))
		for _, elem := range v.arrayVal {
			nv, err := ToNative(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, nv)
		}
		return items, nil

	case TypeObject:
		obj := make(map[string]any, len(v.objectVal))
		for _, entry := range v.objectVal {
			nv, err := ToNative(entry.Value)
			if err != nil {
				return nil, err
			}
			obj[entry.Key] = nv
		}
		return obj, nil

	default:
		return nil, fmt.Errorf("slon: unsupported value type %s", v.typ)
	}
}

// ============================================================
// JSON Interop
// ============================================================

// FromJSON converts JSON bytes to an SValue. JSON numbers that are
// integral and within the float64-exact range become integers; object
// keys are sorted since encoding/json does not preserve order.
func FromJSON(data []byte) (*SValue, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("slon: JSON parse error: %w", err)
	}
	return fromJSONValue(v)
}

func fromJSONValue(v any) (*SValue, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil

	case bool:
		return Bool(val), nil

	case string:
		return Str(val), nil

	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf("slon: non-finite number is not representable")
		}
		if val == math.Trunc(val) && val >= -9007199254740991 && val <= 9007199254740991 {
			return Int(int64(val)), nil
		}
		return Float(val), nil

	case []any:
		items := make([]*SValue, 0, len(val))
		for i, elem := range val {
			sv, err := fromJSONValue(elem)
			if err != nil {
				return nil, fmt.Errorf("array[%d]: %w", i, err)
			}
			items = append(items, sv)
		}
		return Array(items...), nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]ObjectEntry, 0, len(val))
		for _, k := range keys {
			sv, err := fromJSONValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("object[%q]: %w", k, err)
			}
			entries = append(entries, ObjectEntry{Key: k, Value: sv})
		}
		return Object(entries...), nil

	default:
		return nil, fmt.Errorf("slon: unsupported JSON type %T", v)
	}
}

// ToJSON converts an SValue to JSON bytes. Datetimes become RFC 3339
// strings; object entry order is not preserved by encoding/json.
func ToJSON(v *SValue) ([]byte, error) {
	nv, err := ToNative(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(nv)
}
