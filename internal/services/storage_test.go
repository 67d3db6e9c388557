package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFilePath(t *testing.T) {
	s := NewStorageService("/var/uploads")

	want := filepath.Join("/var/uploads", "resume_abc.pdf")
	if got := s.GetFilePath("resume_abc.pdf"); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestEnsureUploadDirAndReadFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s := NewStorageService(dir)

	if err := s.EnsureUploadDir(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("Expected upload directory to exist: %v", err)
	}

	path := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != "%PDF-1.4" {
		t.Errorf("Expected file contents '%%PDF-1.4', got %q", string(data))
	}

	if err := s.DeleteFile("resume.pdf"); err != nil {
		t.Fatalf("Unexpected error deleting file: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected file to be deleted")
	}
}
