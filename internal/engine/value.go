// Package engine provides the evaluator side of the koi shell: runtime
// values, the persistent process-wide state, and block evaluation. The
// completion engine reads this state and re-enters the evaluator for
// dynamic completion providers.
package engine

import (
	"fmt"
	"strconv"

	"github.com/koi-shell/koi/internal/syntax"
)

// ValueKind discriminates runtime values.
type ValueKind int

const (
	// KindNothing is the empty value. It still carries a span, which is
	// how a completion provider learns what is being completed.
	KindNothing ValueKind = iota
	// KindString is a text value.
	KindString
	// KindInt is an integer value.
	KindInt
	// KindList is an ordered sequence of values.
	KindList
)

// Value is one runtime value. Every value carries the span of the source
// it came from.
type Value struct {
	Kind ValueKind
	Str  string
	Int  int64
	List []Value
	Span syntax.Span
}

// Nothing creates the empty value carrying a span.
func Nothing(sp syntax.Span) Value {
	return Value{Kind: KindNothing, Span: sp}
}

// Str creates a string value.
func Str(s string, sp syntax.Span) Value {
	return Value{Kind: KindString, Str: s, Span: sp}
}

// IntVal creates an integer value.
func IntVal(n int64, sp syntax.Span) Value {
	return Value{Kind: KindInt, Int: n, Span: sp}
}

// ListVal creates a list value.
func ListVal(items []Value, sp syntax.Span) Value {
	return Value{Kind: KindList, List: items, Span: sp}
}

// AsString coerces the value to a string. Lists and the empty value are
// not string-coercible; a completion provider yielding one has violated
// its contract.
func (v Value) AsString() (string, error) {
	switch v.Kind {
	case KindString:
		return v.Str, nil
	case KindInt:
		return strconv.FormatInt(v.Int, 10), nil
	default:
		return "", fmt.Errorf("cannot coerce %s to string", v.Kind)
	}
}

// AsList returns the items of a list value.
func (v Value) AsList() ([]Value, error) {
	if v.Kind != KindList {
		return nil, fmt.Errorf("cannot coerce %s to list", v.Kind)
	}
	return v.List, nil
}

func (k ValueKind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}
