package raaga

import (
	"errors"
	"testing"
)

func TestBuiltinRaagaOffsets(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name string
		want []int
	}{
		{"bhairav", []int{0, 1, 4, 5, 7, 8, 11, 12}},
		{"bhairavi", []int{0, 1, 3, 5, 7, 8, 10, 12}},
		{"bhupali", []int{0, 2, 4, 7, 9, 12}},
		{"malkauns", []int{0, 3, 5, 8, 10, 12}},
		{"asavari", []int{0, 2, 3, 5, 7, 8, 10, 12}},
	}

	for _, tc := range cases {
		got, err := reg.Offsets(tc.name)
		if err != nil {
			t.Fatalf("Offsets(%q) error = %v", tc.name, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("Offsets(%q) = %v, want %v", tc.name, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Offsets(%q)[%d] = %d, want %d", tc.name, i, got[i], tc.want[i])
			}
		}
	}
}

func TestDefineNormalizesAndOverwrites(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Define("  Durga ", []string{"Sa", "Re", "Ma", "Dha", "Sa'"}); err != nil {
		t.Fatalf("Define() error = %v", err)
	}

	got, err := reg.Offsets("DURGA")
	if err != nil {
		t.Fatalf("Offsets() error = %v", err)
	}
	want := []int{0, 2, 5, 9, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", got, want)
		}
	}

	// Redefinition replaces the previous scale.
	if err := reg.Define("durga", []string{"Sa", "Pa"}); err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	got, _ = reg.Offsets("durga")
	if len(got) != 2 || got[0] != 0 || got[1] != 7 {
		t.Fatalf("redefined offsets = %v, want [0 7]", got)
	}
}

func TestDefineDropsDuplicateOffsets(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Define("dup", []string{"Sa", "Pa", "Sa", "Pa"}); err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	got, _ := reg.Offsets("dup")
	if len(got) != 2 || got[0] != 0 || got[1] != 7 {
		t.Fatalf("offsets = %v, want [0 7]", got)
	}
}

func TestDefineRejectsUnknownSwara(t *testing.T) {
	reg := NewRegistry()

	err := reg.Define("broken", []string{"Sa", "Fa"})
	if err == nil {
		t.Fatal("Define() with unknown swara did not fail")
	}
}

func TestDefineRejectsEmpty(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Define("", []string{"Sa"}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Define(\"\") error = %v, want ErrEmptyName", err)
	}
	if err := reg.Define("empty", nil); !errors.Is(err, ErrEmptyScale) {
		t.Fatalf("Define(nil swaras) error = %v, want ErrEmptyScale", err)
	}
}

func TestUnknownRaaga(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Scale("todi")
	if !errors.Is(err, ErrUnknownRaaga) {
		t.Fatalf("Scale(\"todi\") error = %v, want ErrUnknownRaaga", err)
	}
}

func TestSnapMembershipAndDistance(t *testing.T) {
	reg := NewRegistry()

	for _, name := range reg.Names() {
		scale, err := reg.Scale(name)
		if err != nil {
			t.Fatalf("Scale(%q) error = %v", name, err)
		}

		permitted := make(map[int]bool)
		for _, offset := range scale.Offsets() {
			permitted[floorMod(offset, 12)] = true
		}

		for s := -30; s <= 30; s++ {
			snapped := scale.Snap(s)
			if !permitted[floorMod(snapped, 12)] {
				t.Fatalf("%s: Snap(%d) = %d, octave-relative offset not in raaga", name, s, snapped)
			}
			if d := absInt(snapped - s); d > 6 {
				t.Fatalf("%s: Snap(%d) = %d, distance %d > 6", name, s, snapped, d)
			}
		}
	}
}

func TestSnapTieBreakIsFirstInOrder(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Define("tie", []string{"Re", "Ga"}); err != nil {
		t.Fatalf("Define() error = %v", err)
	}
	scale, _ := reg.Scale("tie")

	// 3 is equidistant from Re (2) and Ga (4); the first defined wins.
	if got := scale.Snap(3); got != 2 {
		t.Fatalf("Snap(3) = %d, want 2", got)
	}
}

func TestSnapPreservesOctave(t *testing.T) {
	reg := NewRegistry()
	scale, _ := reg.Scale("bhupali")

	cases := []struct {
		in   int
		want int
	}{
		{0, 0},
		{3, 2},   // komal Ga pulls down to Re (first of the two candidates)
		{4, 4},   // Ga is permitted
		{16, 16}, // upper-octave Ga
		{-8, -8}, // lower-octave Ga
		{11, 12}, // Ni snaps up to the octave Sa
		{-1, 0},  // lower Ni snaps up to middle Sa
	}
	for _, tc := range cases {
		if got := scale.Snap(tc.in); got != tc.want {
			t.Fatalf("Snap(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSwaraToSemitoneUnknown(t *testing.T) {
	if offset, ok := SwaraToSemitone("Do"); ok || offset != 0 {
		t.Fatalf("SwaraToSemitone(\"Do\") = (%d, %v), want (0, false)", offset, ok)
	}
}
