// Package format parses item payload descriptors such as "I:4" or
// "I:4;F:1;C:0".
//
// The tag 'L' is folded to 'I' before tokenizing because upstream sources
// disagree on which of the two they report. A descriptor therefore cannot
// tell a legacy 'L' item from a 32-bit 'I' item; callers that need 64-bit
// precision must carry the distinction out of band.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Type tags.
const (
	TypeInt    byte = 'I'
	TypeLong   byte = 'L'
	TypeInt64  byte = 'X'
	TypeShort  byte = 'S'
	TypeFloat  byte = 'F'
	TypeDouble byte = 'D'
	TypeChar   byte = 'C'
)

var (
	ErrEmpty       = errors.New("format: empty descriptor")
	ErrMissingType = errors.New("format: missing type tag")
	ErrInvalidType = errors.New("format: type tag must be one character")
	ErrInvalidSize = errors.New("format: invalid size")
)

// FormatError reports a malformed Type:Size token.
type FormatError struct {
	Token string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v in token %q", e.Err, e.Token)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Element is one Type:Size pair. Size 0 means arbitrary or trailing length.
type Element struct {
	Type byte
	Size uint32
}

func (e Element) String() string {
	return string(e.Type) + ":" + strconv.FormatUint(uint64(e.Size), 10)
}

// Descriptor is an ordered list of elements. The scalar flags are only
// set for single-element descriptors.
type Descriptor struct {
	Elements []Element

	IsArray      bool
	IsFloat      bool
	IsDouble     bool
	IsInt32      bool
	IsInt64Alias bool
	IsShort      bool
	IsChar       bool
}

// IsStruct reports whether the descriptor has more than one element.
func (d Descriptor) IsStruct() bool {
	return len(d.Elements) > 1
}

// First returns the first element, if any.
func (d Descriptor) First() (Element, bool) {
	if len(d.Elements) == 0 {
		return Element{}, false
	}
	return d.Elements[0], true
}

func (d Descriptor) String() string {
	parts := make([]string, len(d.Elements))
	for i, e := range d.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ";")
}

type pending struct {
	typ     byte
	size    uint32
	hasSize bool
}

// Parse reads a ';' or ',' separated list of Type[:Size] tokens.
func Parse(spec string) (Descriptor, error) {
	spec = strings.ReplaceAll(spec, string(TypeLong), string(TypeInt))
	tokens := strings.FieldsFunc(spec, func(r rune) bool { return r == ';' || r == ',' })

	items := make([]pending, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		p, err := parseToken(tok)
		if err != nil {
			return Descriptor{}, err
		}
		items = append(items, p)
	}
	if len(items) == 0 {
		return Descriptor{}, ErrEmpty
	}

	defaultSize := uint32(1)
	if len(items) > 1 {
		defaultSize = 0
	}
	d := Descriptor{Elements: make([]Element, len(items))}
	for i, p := range items {
		size := defaultSize
		if p.hasSize {
			size = p.size
		}
		d.Elements[i] = Element{Type: p.typ, Size: size}
	}
	if !d.IsStruct() {
		d.classify()
	}
	return d, nil
}

// MustParse is Parse for descriptors known at compile time.
func MustParse(spec string) Descriptor {
	d, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return d
}

func parseToken(tok string) (pending, error) {
	typ, size, hasColon := strings.Cut(tok, ":")
	typ = strings.TrimSpace(typ)
	switch len(typ) {
	case 0:
		return pending{}, &FormatError{Token: tok, Err: ErrMissingType}
	case 1:
	default:
		return pending{}, &FormatError{Token: tok, Err: ErrInvalidType}
	}
	p := pending{typ: typ[0]}
	size = strings.TrimSpace(size)
	if !hasColon || size == "" {
		return p, nil
	}
	v, err := strconv.ParseUint(size, 10, 32)
	if err != nil {
		return pending{}, &FormatError{Token: tok, Err: ErrInvalidSize}
	}
	p.size = uint32(v)
	p.hasSize = true
	return p, nil
}

func (d *Descriptor) classify() {
	e := d.Elements[0]
	d.IsArray = e.Size != 1
	switch e.Type {
	case TypeInt:
		d.IsInt32 = true
	case TypeInt64:
		d.IsInt64Alias = true
	case TypeShort:
		d.IsShort = true
	case TypeFloat:
		d.IsFloat = true
	case TypeDouble:
		d.IsDouble = true
	case TypeChar:
		d.IsChar = true
	}
}

// ElementWidth returns the byte width of one value of typ.
func ElementWidth(typ byte) (int, bool) {
	switch typ {
	case TypeChar:
		return 1, true
	case TypeShort:
		return 2, true
	case TypeInt, TypeLong, TypeFloat:
		return 4, true
	case TypeDouble, TypeInt64:
		return 8, true
	default:
		return 0, false
	}
}

// FixedSize returns the payload length in bytes when every element has a
// known width and an explicit non-zero size.
func (d Descriptor) FixedSize() (int, bool) {
	if len(d.Elements) == 0 {
		return 0, false
	}
	total := 0
	for _, e := range d.Elements {
		w, ok := ElementWidth(e.Type)
		if !ok || e.Size == 0 {
			return 0, false
		}
		total += w * int(e.Size)
	}
	return total, true
}
