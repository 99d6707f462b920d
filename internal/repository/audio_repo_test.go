package repository

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestNewAudioFilename(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := NewAudioFilename()
		if !ValidAudioFilename(name) {
			t.Fatalf("generated invalid filename %q", name)
		}
		if seen[name] {
			t.Fatalf("duplicate filename %q", name)
		}
		seen[name] = true
	}
}

func TestValidAudioFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"0123456789abcdef0123456789abcdef.mp3", true},
		{"nonexistent.mp3", false},
		{"../0123456789abcdef0123456789abcdef.mp3", false},
		{"0123456789ABCDEF0123456789ABCDEF.mp3", false},
		{"0123456789abcdef0123456789abcdef.wav", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := ValidAudioFilename(tc.name); got != tc.want {
			t.Errorf("ValidAudioFilename(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFileAudioStore_SaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "temp")
	store := NewFileAudioStore(dir)

	name, err := store.Save(context.Background(), []byte("ID3audio"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if string(data) != "ID3audio" {
		t.Errorf("unexpected content %q", data)
	}

	rc, err := store.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("unexpected open error: %v", err)
	}
	defer rc.Close()
	got, _ := io.ReadAll(rc)
	if string(got) != "ID3audio" {
		t.Errorf("unexpected read %q", got)
	}
}

func TestFileAudioStore_OpenMissing(t *testing.T) {
	store := NewFileAudioStore(t.TempDir())

	for _, name := range []string{"nonexistent.mp3", NewAudioFilename(), "../../etc/passwd"} {
		if _, err := store.Open(context.Background(), name); !errors.Is(err, ErrAudioNotFound) {
			t.Errorf("Open(%q): expected ErrAudioNotFound, got %v", name, err)
		}
	}
}

func TestFileAudioStore_OpenDirectoryIsNotFound(t *testing.T) {
	dir := t.TempDir()
	name := NewAudioFilename()
	if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
		t.Fatal(err)
	}

	store := NewFileAudioStore(dir)
	if _, err := store.Open(context.Background(), name); !errors.Is(err, ErrAudioNotFound) {
		t.Errorf("expected ErrAudioNotFound for directory, got %v", err)
	}
}
