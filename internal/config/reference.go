package config

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reference identifies a Go function or method, possibly a builtin one.
//
//	"fmt".Println       // Package: "fmt", Name: "Println"
//	"strings".Builder.Len // Package: "strings", Type: "Builder", Name: "Len"
//	"builtin".len
type Reference struct {
	Package string
	Type    string
	Name    string
}

var (
	_ encoding.TextUnmarshaler = (*Reference)(nil)
	_ encoding.TextMarshaler   = Reference{}
)

// UnmarshalText parses the `"pkg/path".[Type.]Name` form.
func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty reference")
	}

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in reference: %q", s)
	}
	end++

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in reference: %q", s)
	}

	rest := s[end+1:]
	if !strings.HasPrefix(rest, ".") {
		return fmt.Errorf("reference must contain a name: %q", s)
	}
	rest = rest[1:]

	parts := strings.Split(rest, ".")
	if len(parts) > 2 {
		return fmt.Errorf("reference must have 1 or 2 identifiers after package: %q", s)
	}
	for _, p := range parts {
		if !isIdent(p) {
			return fmt.Errorf("invalid identifier %q in reference %q", p, s)
		}
	}

	r.Package = pkg
	switch len(parts) {
	case 1:
		r.Type = ""
		r.Name = parts[0]
	case 2:
		r.Type = parts[0]
		r.Name = parts[1]
	}

	return nil
}

// MarshalText renders the reference back into its text form.
func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, errors.New("cannot marshal Reference: empty Package")
	}
	if r.Name == "" {
		return nil, errors.New("cannot marshal Reference: empty Name")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteString(`".`)
	if r.Type != "" {
		b.WriteString(r.Type)
		b.WriteByte('.')
	}
	b.WriteString(r.Name)

	return []byte(b.String()), nil
}

func (r Reference) String() string {
	v, err := r.MarshalText()
	if err != nil {
		return fmt.Sprintf("invalid-reference(%s.%s.%s)", r.Package, r.Type, r.Name)
	}

	return string(v)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
