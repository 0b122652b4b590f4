package naming

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testExts = []string{".mov", ".heic", ".jpg", ".jpeg"}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"IMG_0001", "IMG_0001"},
		{`photo<>:"/\|?*`, "photo_"},
		{"a/b\\c", "a_b_c"},
		{"line\nbreak\rname", "line_break_name"},
		{"  padded  ", "padded"},
		{"every?day*photo", "every_day_photo"},
	}

	for _, tt := range tests {
		got := Sanitize(tt.in)
		if got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if strings.ContainsAny(got, illegalChars) {
			t.Errorf("Sanitize(%q) = %q still contains illegal characters", tt.in, got)
		}
	}
}

func TestAllocator_FirstUseReturnsBaseStem(t *testing.T) {
	a := New(t.TempDir(), testExts)

	if got := a.Allocate("IMG_0001"); got != "IMG_0001" {
		t.Errorf("expected base stem, got %q", got)
	}
}

func TestAllocator_DuplicatesAreDisambiguated(t *testing.T) {
	a := New(t.TempDir(), testExts)

	first := a.Allocate("IMG_0001")
	second := a.Allocate("IMG_0001")
	third := a.Allocate("IMG_0001")

	if first != "IMG_0001" {
		t.Errorf("first allocation: got %q", first)
	}
	if second != "IMG_0001_1" {
		t.Errorf("second allocation: got %q", second)
	}
	if third != "IMG_0001_2" {
		t.Errorf("third allocation: got %q", third)
	}
}

func TestAllocator_ChecksDiskForPriorRunOutput(t *testing.T) {
	tmpDir := t.TempDir()

	// Simulate a prior run that already produced IMG_0001.heic.
	if err := os.WriteFile(filepath.Join(tmpDir, "IMG_0001.heic"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	a := New(tmpDir, testExts)
	if got := a.Allocate("IMG_0001"); got != "IMG_0001_1" {
		t.Errorf("expected disambiguated stem for new base seen on disk, got %q", got)
	}
}

func TestAllocator_AnyRecognizedExtensionCollides(t *testing.T) {
	tmpDir := t.TempDir()

	// Only the video file survives from an interrupted run; the stem is
	// still taken.
	if err := os.WriteFile(filepath.Join(tmpDir, "IMG_0002.mov"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	a := New(tmpDir, testExts)
	if got := a.Allocate("IMG_0002"); got != "IMG_0002_1" {
		t.Errorf("expected collision on .mov, got %q", got)
	}
}

func TestAllocator_SkipsOccupiedCounters(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"IMG_0003.heic", "IMG_0003_1.jpg", "IMG_0003_2.mov"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	a := New(tmpDir, testExts)
	if got := a.Allocate("IMG_0003"); got != "IMG_0003_3" {
		t.Errorf("expected IMG_0003_3, got %q", got)
	}
}

func TestAllocator_PairwiseDistinctWithoutDiskWrites(t *testing.T) {
	// Nothing is written between allocations (the dry-run case); stems for
	// a duplicate-heavy input sequence must still be pairwise distinct.
	a := New(t.TempDir(), testExts)

	inputs := []string{"a", "b", "a", "a", "b", "c", "a"}
	seen := make(map[string]bool)
	for _, in := range inputs {
		stem := a.Allocate(in)
		if seen[stem] {
			t.Fatalf("stem %q allocated twice", stem)
		}
		seen[stem] = true
	}
}

func TestAllocator_SanitizedStemsShareCounter(t *testing.T) {
	a := New(t.TempDir(), testExts)

	// Both inputs sanitize to the same base and must not collide.
	first := a.Allocate("pic?1")
	second := a.Allocate("pic*1")

	if first == second {
		t.Fatalf("sanitized duplicates collided on %q", first)
	}
	if first != "pic_1" || second != "pic_1_1" {
		t.Errorf("got %q and %q", first, second)
	}
}

func TestAllocator_EmptyStemFallsBack(t *testing.T) {
	a := New(t.TempDir(), testExts)

	if got := a.Allocate("???"); got != "untitled" {
		t.Errorf("expected fallback stem, got %q", got)
	}
}
