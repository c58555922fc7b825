package config

import (
	"encoding"
	"fmt"
)

// CalleeKind describes how a known Go callee is lowered.
type CalleeKind int

const (
	CalleeKindInvalid CalleeKind = iota

	// CalleeKindCall replaces the callee with a JS function keeping arguments as they are.
	CalleeKindCall

	// CalleeKindLength turns len(x) into x.length.
	CalleeKindLength

	// CalleeKindConcat turns append(s, a, b) into s.concat([a, b]).
	CalleeKindConcat

	// CalleeKindThrow abandons execution: the call becomes a throw statement.
	CalleeKindThrow
)

var calleeKindValueMap = map[CalleeKind]string{
	CalleeKindCall:   "call",
	CalleeKindLength: "length",
	CalleeKindConcat: "concat",
	CalleeKindThrow:  "throw",
}

func (k CalleeKind) String() string {
	v, ok := calleeKindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

var (
	_ encoding.TextUnmarshaler = (*CalleeKind)(nil)
	_ encoding.TextMarshaler   = CalleeKind(0)
)

// UnmarshalText for setting values with configs, CLI, etc.
func (k *CalleeKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for key, v := range calleeKindValueMap {
		if v == text {
			*k = key
			return nil
		}
	}

	return fmt.Errorf("unknown callee kind %q", text)
}

func (k CalleeKind) MarshalText() ([]byte, error) {
	v, ok := calleeKindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid CalleeKind(%d)", k)
	}

	return []byte(v), nil
}

// Callee describes the JS replacement of a Go callee.
type Callee struct {
	Kind CalleeKind `yaml:"kind"`

	// Target is a dotted JS expression like console.log. Used with CalleeKindCall
	// and CalleeKindThrow (as an error constructor, may be empty).
	Target string `yaml:"target"`
}
