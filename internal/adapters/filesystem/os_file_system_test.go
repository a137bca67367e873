package filesystem

import (
	"path/filepath"
	"testing"

	"shipctl/internal/ports"
)

func TestOsFileSystem_WriteAndReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")
	sut := ProvideOsFileSystem()

	if err := sut.WriteFile(path, []byte("targets: []\n"), ports.ReadWrite); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := sut.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "targets: []\n" {
		t.Errorf("unexpected file content: %q", string(data))
	}
}

func TestOsFileSystem_FileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "present")
	sut := ProvideOsFileSystem()

	if err := sut.WriteFile(path, []byte("x"), ports.ReadWrite); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	exists, err := sut.FileExists(path)
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if !exists {
		t.Error("expected file to exist")
	}

	exists, err = sut.FileExists(filepath.Join(dir, "absent"))
	if err != nil {
		t.Fatalf("FileExists failed: %v", err)
	}
	if exists {
		t.Error("expected file to be absent")
	}
}
