package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDirSinkSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dumps", "nested")
	sink := NewDirSink()

	data := []byte{0x00, 0xC3, 0x50, 0x01}
	if err := sink.Save(dir, "TETRIS.gb", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "TETRIS.gb"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("file content = %X, want %X", got, data)
	}
}

func TestDirSinkReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	sink := NewDirSink()

	if err := sink.Save(dir, "GAME.gb", bytes.Repeat([]byte{0xAA}, 64)); err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	if err := sink.Save(dir, "GAME.gb", []byte{0x01, 0x02}); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "GAME.gb"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Errorf("file content = %X, want 0102", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("folder has %d entries, want 1 (temp files left behind?)", len(entries))
	}
}

func TestDirSinkErrors(t *testing.T) {
	dir := t.TempDir()

	// a regular file where the folder should be
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		folder   string
		fileName string
		wantMsg  string
	}{
		{name: "empty name", folder: dir, fileName: "", wantMsg: "invalid file name"},
		{name: "path in name", folder: dir, fileName: "../escape.gb", wantMsg: "invalid file name"},
		{name: "folder is a file", folder: filepath.Join(blocker, "sub"), fileName: "a.gb", wantMsg: "create folder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDirSink().Save(tt.folder, tt.fileName, []byte{1})
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var se *SaveError
			if !errors.As(err, &se) {
				t.Fatalf("error type = %T, want *SaveError", err)
			}
			if se.FileName != tt.fileName {
				t.Errorf("FileName = %q, want %q", se.FileName, tt.fileName)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error should contain %q, got: %v", tt.wantMsg, err)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Save("/nonexistent", "x.gb", []byte{1, 2, 3}); err != nil {
		t.Errorf("Discard.Save() error = %v", err)
	}
}
