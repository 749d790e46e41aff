package args

import (
	"errors"
	"testing"

	"github.com/danmuck/monctl/internal/protocol/byteorder"
	"github.com/danmuck/monctl/internal/protocol/format"
)

func TestParseArg(t *testing.T) {
	tests := []struct {
		spec string
		text string
		want Arg
	}{
		{"I", "42", Int32(42)},
		{"L:1", "-7", Int32(-7)},
		{"I", "0x10", Int32(16)},
		{"F", " 2.5 ", Float32(2.5)},
		{"C:0", "start run", String("start run")},
	}
	for _, tc := range tests {
		t.Run(tc.spec+"="+tc.text, func(t *testing.T) {
			got, err := ParseArg(format.MustParse(tc.spec), tc.text)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestParseArgErrors(t *testing.T) {
	tests := []struct {
		spec string
		text string
		want error
	}{
		{"I", "twelve", ErrInvalidNumber},
		{"I", "99999999999", ErrInvalidNumber},
		{"F", "1.2.3", ErrInvalidNumber},
		{"D", "1.0", ErrUnsupportedType},
		{"I:1;F:1", "1", ErrStructArgument},
	}
	for _, tc := range tests {
		t.Run(tc.spec+"="+tc.text, func(t *testing.T) {
			_, err := ParseArg(format.MustParse(tc.spec), tc.text)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var argErr *ArgError
			if !errors.As(err, &argErr) || argErr.Text != tc.text {
				t.Fatalf("expected ArgError carrying text, got %#v", err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := []Arg{String("hello"), String(""), Int32(-123456), Float32(3.25)}
	for _, endian := range []int32{byteorder.FlagNative, byteorder.FlagSwap} {
		for _, a := range in {
			b, err := Encode(a, endian)
			if err != nil {
				t.Fatalf("encode %v: %v", a, err)
			}
			out, err := Decode(a.Kind, b, endian)
			if err != nil {
				t.Fatalf("decode %v: %v", a, err)
			}
			if out != a {
				t.Fatalf("round trip: got %+v want %+v", out, a)
			}
		}
	}
}

func TestEncodeNetworkOrder(t *testing.T) {
	b, err := Encode(Int32(0x01020304), byteorder.NativeFlag())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if b[0] != 1 || b[1] != 2 || b[2] != 3 || b[3] != 4 {
		t.Fatalf("expected big-endian bytes, got %v", b)
	}
}

func TestEncodeStringIsTerminated(t *testing.T) {
	b, err := Encode(String("go"), byteorder.FlagNative)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(b) != 3 || b[2] != 0 {
		t.Fatalf("expected NUL terminated string, got %v", b)
	}
}

func TestDecodeShortNumber(t *testing.T) {
	if _, err := Decode(KindInt32, []byte{1, 2}, byteorder.FlagNative); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
	if _, err := Encode(Arg{}, byteorder.FlagNative); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
