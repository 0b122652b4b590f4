package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()

	testFiles := []struct {
		name    string
		content string
	}{
		{"IMG_0001.livp", "fake livp"},
		{"IMG_0002.LIVP", "uppercase extension"},
		{"subdir/IMG_0001.livp", "nested duplicate name"},
		{"photo.heic", "should be ignored"},
		{"notes.txt", "should be ignored"},
	}

	for _, tf := range testFiles {
		path := filepath.Join(tmpDir, tf.name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(tf.content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := New().Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 archives, got %d", len(entries))
	}

	for _, e := range entries {
		if e.Stem == "" {
			t.Errorf("entry %s has empty stem", e.Path)
		}
		if e.Size == 0 {
			t.Errorf("entry %s has zero size", e.Path)
		}
	}
}

func TestScanner_Scan_MissingRoot(t *testing.T) {
	_, err := New().Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScanner_Scan_StemStripsExtension(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "IMG_0001.livp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := New().Scan(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Stem != "IMG_0001" {
		t.Errorf("expected stem IMG_0001, got %s", entries[0].Stem)
	}
}
