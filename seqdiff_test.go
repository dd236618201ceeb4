package seqdiff

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSlices(t *testing.T) {
	tests := []struct {
		name string
		x, y []int
		want []Edit[int]
	}{
		{
			name: "empty",
			x:    nil,
			y:    nil,
			want: nil,
		},
		{
			name: "identical",
			x:    []int{0, 1, 2},
			y:    []int{0, 1, 2},
			want: []Edit[int]{{Op: Keep}, {Op: Keep}, {Op: Keep}},
		},
		{
			name: "x-empty",
			y:    []int{7, 8, 9},
			want: []Edit[int]{{Add, 7}, {Add, 8}, {Add, 9}},
		},
		{
			name: "y-empty",
			x:    []int{7, 8, 9},
			want: []Edit[int]{{Op: Remove}, {Op: Remove}, {Op: Remove}},
		},
		{
			name: "change-then-remove",
			x:    []int{0, 1, 2, 3},
			y:    []int{0, 2, 2},
			want: []Edit[int]{{Op: Keep}, {Change, 2}, {Op: Keep}, {Op: Remove}},
		},
		{
			name: "change-then-add",
			x:    []int{0, 1, 2},
			y:    []int{0, 3, 2, 3},
			want: []Edit[int]{{Op: Keep}, {Change, 3}, {Op: Keep}, {Add, 3}},
		},
		{
			name: "trailing-removes",
			x:    []int{0, 1, 2, 4},
			y:    []int{0, 2},
			want: []Edit[int]{{Op: Keep}, {Change, 2}, {Op: Remove}, {Op: Remove}},
		},
		{
			name: "trailing-adds",
			x:    []int{0, 2},
			y:    []int{0, 1, 2, 4},
			want: []Edit[int]{{Op: Keep}, {Change, 1}, {Add, 2}, {Add, 4}},
		},
		{
			name: "multiple-changes",
			x:    []int{0, 1, 2, 3},
			y:    []int{0, 3, 1, 3},
			want: []Edit[int]{{Op: Keep}, {Change, 3}, {Change, 1}, {Op: Keep}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Slices(tt.x, tt.y))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Slices result is different (-want, +got):\n%s", diff)
			}
			if want := max(len(tt.x), len(tt.y)); len(got) != want {
				t.Errorf("got %d edits, want max(len(x), len(y)) = %d", len(got), want)
			}

			// A second run over the same inputs must produce the same edits.
			again := slices.Collect(Slices(tt.x, tt.y))
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("second run is different (-first, +second):\n%s", diff)
			}
		})
	}
}

func TestSlicesFunc(t *testing.T) {
	type tagged struct {
		id int
	}
	eq := func(a tagged, b int) bool { return a.id == b }

	x := []tagged{{0}, {2}}
	y := []int{0, 1, 2, 4}
	want := []Edit[int]{{Op: Keep}, {Change, 1}, {Add, 2}, {Add, 4}}

	got := slices.Collect(SlicesFunc(x, y, eq))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SlicesFunc result is different (-want, +got):\n%s", diff)
	}
}

// countingSeq yields the elements of s and records how many were pulled.
func countingSeq[T any](s []T, pulled *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}

func TestCompareLazy(t *testing.T) {
	var xp, yp int
	x := countingSeq([]int{0, 1, 2, 3, 4}, &xp)
	y := countingSeq([]int{0, 9, 2, 3, 4}, &yp)

	n := 0
	for range Compare(x, y) {
		n++
		if n == 2 {
			break
		}
	}

	// One pull per side per edit, nothing beyond the break.
	if xp != 2 || yp != 2 {
		t.Errorf("pulled %d left and %d right elements, want 2 and 2", xp, yp)
	}
}

func TestCompareUnevenPulls(t *testing.T) {
	// The exhausted side keeps being pulled; the pulls must be harmless
	// no-ops and the edits must keep coming from the longer side.
	var xp int
	x := countingSeq([]int{1}, &xp)
	y := slices.Values([]int{1, 2, 3})

	got := slices.Collect(Compare(x, y))
	want := []Edit[int]{{Op: Keep}, {Add, 2}, {Add, 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compare result is different (-want, +got):\n%s", diff)
	}
	if xp != 1 {
		t.Errorf("pulled %d left elements, want 1", xp)
	}
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{Keep, "Keep"},
		{Change, "Change"},
		{Remove, "Remove"},
		{Add, "Add"},
		{Op(42), "Op(42)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}
