// Package slon implements SLON, a minimal JSON variant.
//
// SLON keeps the JSON data model but trims the syntax:
//   - Objects use parentheses instead of braces
//   - Array elements are separated by | instead of ,
//   - Strings and keys may be unquoted when unambiguous
//   - A fixed-width datetime literal is a first-class value
//
// # Syntax
//
//	Object:    (name: slon, version: 2)
//	Array:     [1 | 2 | 3]
//	String:    hello  or  'quoted string'  or  "also quoted"
//	Number:    42, -7, 3.14, 1e-9
//	Datetime:  2024-06-01/12:30:00.000
//	Keywords:  true, false, null
//
// # Example
//
//	(
//	  name: 'release pipeline',
//	  enabled: true,
//	  retries: 3,
//	  started: 2024-06-01/12:30:00.000,
//	  stages: [build | test | (name: deploy, manual: true)]
//	)
//
// # Value Model
//
// Parsing produces an *SValue, a closed tagged union over null, bool,
// number (int64/uint64/float64 tiers), string, array, object, and datetime.
// Object entries keep their insertion order; duplicate keys in source text
// overwrite the earlier value in place.
//
// # Round Trips
//
// Emit produces a canonical form: for any representable tree v,
// Parse(Emit(v)) is structurally equal to v. Parsing is fail-fast with
// positioned errors; serialization refuses non-finite numbers.
package slon
