package quality

import "testing"

func TestDecodeEncodeAllLaneValues(t *testing.T) {
	// every lane value in every position, other lanes set to distinct values
	for v := 0; v <= 0xff; v++ {
		cases := [][4]int{
			{v, 1, 2, 3},
			{4, v, 5, 6},
			{7, 8, v, 9},
			{10, 11, 12, v},
			{v, v, v, 0},
		}
		for _, c := range cases {
			q := Decode(Encode(c[0], c[1], c[2], c[3]))
			want := New(uint8(c[0]), uint8(c[1]), uint8(c[2]), uint8(c[3]))
			if q != want {
				t.Fatalf("round trip %v: got %+v", c, q)
			}
		}
	}
}

func TestEncodeDecodeWord(t *testing.T) {
	for _, raw := range []int32{0, 1, 0x01020304, -2, 0x7fffffff, -0x80000000} {
		if got := Decode(raw).Encode(); got != raw {
			t.Fatalf("Decode(0x%x).Encode() = 0x%x", raw, got)
		}
	}
}

func TestLaneLayout(t *testing.T) {
	q := Decode(0x04030201)
	if q.State != 1 || q.StructureType != 2 || q.Visibility != 3 || q.Mode != 4 {
		t.Fatalf("unexpected lanes: %+v", q)
	}
}

func TestEncodeMasksInputs(t *testing.T) {
	if got := Encode(0x101, 0x202, 0x303, 0x404); got != 0x04030201 {
		t.Fatalf("expected masked lanes, got 0x%x", got)
	}
}

func TestUnspecifiedSentinel(t *testing.T) {
	q := Decode(-1)
	if q.Specified() {
		t.Fatalf("expected unspecified")
	}
	if q != Unspecified {
		t.Fatalf("expected Unspecified, got %+v", q)
	}
	if q == New(0, 0, 0, 0) || q == New(0xff, 0xff, 0xff, 0xff) {
		t.Fatalf("unspecified must differ from concrete lanes")
	}
	if q.Encode() != Raw {
		t.Fatalf("unspecified should encode as the sentinel")
	}
	if q.IsOff() || q.IsMeter() || q.IsMonitorable() {
		t.Fatalf("predicates must be false when unspecified")
	}
}

func TestMergeKeepsLanesOnUnspecified(t *testing.T) {
	prev := New(StateOn, StructureMeter, VisibleImportant, 0)
	if got := prev.Merge(Decode(-1)); got != prev {
		t.Fatalf("unspecified overwrote lanes: %+v", got)
	}
	next := Decode(Encode(int(StateError), int(StructureMeter), 0, 0))
	if got := prev.Merge(next); got != next {
		t.Fatalf("expected next quality, got %+v", got)
	}
}

func TestPredicates(t *testing.T) {
	q := New(StateWarning, StructureHistogram, VisibleMonitorable|VisibleImportant, 0)
	if !q.IsWarning() || q.IsOn() || q.IsError() {
		t.Fatalf("state predicates wrong for %s", q)
	}
	if !q.IsHistogram() || q.IsMeter() || q.IsState() || q.IsInfo() {
		t.Fatalf("structure predicates wrong for %s", q)
	}
	if !q.IsMonitorable() || !q.IsImportant() {
		t.Fatalf("expected both visibility flags for %s", q)
	}
	if q.IsHidden() || q.IsCommandable() {
		t.Fatalf("unexpected visibility flags for %s", q)
	}
}
