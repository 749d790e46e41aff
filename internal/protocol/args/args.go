// Package args converts command arguments between text, typed values and
// the wire representation sent with a command.
package args

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/monctl/internal/protocol/byteorder"
	"github.com/danmuck/monctl/internal/protocol/format"
)

// Kind is the primitive type of a command argument.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt32
	KindFloat32
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt32:
		return "int32"
	case KindFloat32:
		return "float32"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

var (
	ErrInvalidNumber   = errors.New("args: invalid number")
	ErrUnsupportedType = errors.New("args: unsupported argument type")
	ErrStructArgument  = errors.New("args: structure arguments are not supported")
	ErrInvalidLength   = errors.New("args: invalid length")
)

// ArgError reports a command argument that could not be converted.
type ArgError struct {
	Kind Kind
	Text string
	Err  error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%v: %s %q", e.Err, e.Kind, e.Text)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// Arg is one typed command argument.
type Arg struct {
	Kind  Kind
	Str   string
	Int   int32
	Float float32
}

func String(v string) Arg   { return Arg{Kind: KindString, Str: v} }
func Int32(v int32) Arg     { return Arg{Kind: KindInt32, Int: v} }
func Float32(v float32) Arg { return Arg{Kind: KindFloat32, Float: v} }

// KindFor maps a scalar descriptor to the argument kind it accepts.
func KindFor(desc format.Descriptor) (Kind, error) {
	switch {
	case desc.IsStruct():
		return 0, ErrStructArgument
	case desc.IsInt32:
		return KindInt32, nil
	case desc.IsFloat:
		return KindFloat32, nil
	case desc.IsChar:
		return KindString, nil
	default:
		return 0, ErrUnsupportedType
	}
}

// ParseArg converts user text into the argument kind desc accepts.
func ParseArg(desc format.Descriptor, text string) (Arg, error) {
	kind, err := KindFor(desc)
	if err != nil {
		return Arg{}, &ArgError{Text: text, Err: err}
	}
	switch kind {
	case KindInt32:
		v, err := strconv.ParseInt(strings.TrimSpace(text), 0, 32)
		if err != nil {
			return Arg{}, &ArgError{Kind: kind, Text: text, Err: ErrInvalidNumber}
		}
		return Int32(int32(v)), nil
	case KindFloat32:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
		if err != nil {
			return Arg{}, &ArgError{Kind: kind, Text: text, Err: ErrInvalidNumber}
		}
		return Float32(float32(v)), nil
	default:
		return String(text), nil
	}
}

// Encode returns the wire bytes of a. Numbers are written in the byte
// order selected by endian; strings are NUL terminated.
func Encode(a Arg, endian int32) ([]byte, error) {
	switch a.Kind {
	case KindString:
		buf := make([]byte, len(a.Str)+1)
		copy(buf, a.Str)
		return buf, nil
	case KindInt32:
		buf := make([]byte, 4)
		byteorder.PutI32(buf, a.Int, endian)
		return buf, nil
	case KindFloat32:
		buf := make([]byte, 4)
		byteorder.PutI32(buf, int32(math.Float32bits(a.Float)), endian)
		return buf, nil
	default:
		return nil, ErrUnsupportedType
	}
}

// Decode is the inverse of Encode.
func Decode(kind Kind, b []byte, endian int32) (Arg, error) {
	switch kind {
	case KindString:
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		return String(string(b)), nil
	case KindInt32, KindFloat32:
		if len(b) != 4 {
			return Arg{}, ErrInvalidLength
		}
		v, err := byteorder.ReadI32(bytes.NewReader(b), endian)
		if err != nil {
			return Arg{}, err
		}
		if kind == KindFloat32 {
			return Float32(math.Float32frombits(uint32(v))), nil
		}
		return Int32(v), nil
	default:
		return Arg{}, ErrUnsupportedType
	}
}

// Value returns the Go value held by a.
func (a Arg) Value() any {
	switch a.Kind {
	case KindInt32:
		return a.Int
	case KindFloat32:
		return a.Float
	default:
		return a.Str
	}
}

func (a Arg) String() string {
	switch a.Kind {
	case KindInt32:
		return strconv.FormatInt(int64(a.Int), 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(a.Float), 'g', -1, 32)
	default:
		return a.Str
	}
}
