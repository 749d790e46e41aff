package format

import (
	"errors"
	"testing"
)

func TestParseScalar(t *testing.T) {
	d, err := Parse("I:4")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(d.Elements) != 1 || d.Elements[0] != (Element{Type: 'I', Size: 4}) {
		t.Fatalf("unexpected elements: %+v", d.Elements)
	}
	if !d.IsInt32 || d.IsStruct() {
		t.Fatalf("expected int32 scalar, got %+v", d)
	}
	if !d.IsArray {
		t.Fatalf("size 4 should be an array")
	}
}

func TestParseScalarDefaultsToSizeOne(t *testing.T) {
	d, err := Parse("F")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Elements[0].Size != 1 {
		t.Fatalf("expected size 1, got %d", d.Elements[0].Size)
	}
	if !d.IsFloat || d.IsArray {
		t.Fatalf("unexpected flags: %+v", d)
	}
}

func TestParseStructure(t *testing.T) {
	d, err := Parse("I:4;F:1;C:0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.IsStruct() || len(d.Elements) != 3 {
		t.Fatalf("expected 3-element structure, got %+v", d.Elements)
	}
	if d.Elements[2].Size != 0 {
		t.Fatalf("expected trailing size 0, got %d", d.Elements[2].Size)
	}
	if d.IsInt32 || d.IsArray || d.IsFloat || d.IsChar || d.IsDouble || d.IsInt64Alias {
		t.Fatalf("scalar flags must be unset for structures: %+v", d)
	}
}

func TestParseStructureDefaultsToSizeZero(t *testing.T) {
	d, err := Parse("I,D,C")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for i, e := range d.Elements {
		if e.Size != 0 {
			t.Fatalf("element %d: expected size 0, got %d", i, e.Size)
		}
	}
	if d.String() != "I:0;D:0;C:0" {
		t.Fatalf("unexpected string %q", d.String())
	}
}

func TestLegacyLongAlias(t *testing.T) {
	l, err := Parse("L:1")
	if err != nil {
		t.Fatalf("parse L: %v", err)
	}
	i, err := Parse("I:1")
	if err != nil {
		t.Fatalf("parse I: %v", err)
	}
	if l.String() != i.String() || l.IsInt32 != i.IsInt32 || l.IsArray != i.IsArray {
		t.Fatalf("L:1 parsed as %+v, I:1 as %+v", l, i)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		spec  string
		check func(Descriptor) bool
	}{
		{"D", func(d Descriptor) bool { return d.IsDouble && !d.IsArray }},
		{"C:0", func(d Descriptor) bool { return d.IsChar && d.IsArray }},
		{"C:80", func(d Descriptor) bool { return d.IsChar && d.IsArray }},
		{"X:1", func(d Descriptor) bool { return d.IsInt64Alias && !d.IsInt32 }},
		{"S:2", func(d Descriptor) bool { return d.IsShort && d.IsArray }},
		{" I : 1 ;", func(d Descriptor) bool { return d.IsInt32 && !d.IsArray }},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			d, err := Parse(tc.spec)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if !tc.check(d) {
				t.Fatalf("unexpected classification %+v", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec string
		want error
	}{
		{"", ErrEmpty},
		{";,", ErrEmpty},
		{"I:abc", ErrInvalidSize},
		{"I:4;F:-1", ErrInvalidSize},
		{":4", ErrMissingType},
		{"INT:4", ErrInvalidType},
	}
	for _, tc := range tests {
		t.Run(tc.spec, func(t *testing.T) {
			_, err := Parse(tc.spec)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestInvalidSizeCarriesToken(t *testing.T) {
	_, err := Parse("I:4;F:x1")
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if ferr.Token != "F:x1" {
		t.Fatalf("unexpected token %q", ferr.Token)
	}
}

func TestFixedSize(t *testing.T) {
	tests := []struct {
		spec string
		want int
		ok   bool
	}{
		{"I:4", 16, true},
		{"F", 4, true},
		{"I:1;D:2;C:3", 4 + 16 + 3, true},
		{"I:4;F:1;C:0", 0, false},
		{"C:0", 0, false},
		{"Q:1", 0, false},
	}
	for _, tc := range tests {
		got, ok := MustParse(tc.spec).FixedSize()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("FixedSize(%q) = %d, %v; want %d, %v", tc.spec, got, ok, tc.want, tc.ok)
		}
	}
}
