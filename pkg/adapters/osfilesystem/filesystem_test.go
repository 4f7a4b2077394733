package osfilesystem

import (
	"path/filepath"
	"testing"
)

func TestFileSystem_WriteAndReadFile(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "snapshot.png")

	if err := fs.WriteFile(path, []byte("png bytes")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "png bytes" {
		t.Errorf("expected %q, got %q", "png bytes", data)
	}
}

func TestFileSystem_WriteFileRequiresParent(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "missing", "snapshot.png")

	if err := fs.WriteFile(path, []byte("x")); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}

func TestFileSystem_MkdirAllAndExists(t *testing.T) {
	fs := New()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	exists, err := fs.Exists(dir)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Fatal("expected directory to be missing")
	}

	if err := fs.MkdirAll(dir); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	exists, err = fs.Exists(dir)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected directory to exist")
	}
}

func TestFileSystem_Remove(t *testing.T) {
	fs := New()
	path := filepath.Join(t.TempDir(), "partial.png")

	if err := fs.WriteFile(path, []byte("x")); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := fs.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if exists, _ := fs.Exists(path); exists {
		t.Error("expected file to be removed")
	}

	if err := fs.Remove(path); err != nil {
		t.Errorf("expected removing a missing file to succeed, got %v", err)
	}
}

func TestFileSystem_RenameReplacesFile(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	src := filepath.Join(dir, ".snap.png.partial")
	dst := filepath.Join(dir, "snap.png")

	if err := fs.WriteFile(dst, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(src, []byte("new")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Rename(src, dst); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}

	data, err := fs.ReadFile(dst)
	if err != nil || string(data) != "new" {
		t.Errorf("expected replaced contents, got %q (%v)", data, err)
	}
	if exists, _ := fs.Exists(src); exists {
		t.Error("expected source to be gone")
	}
}

func TestFileSystem_RenameOntoDirectoryFails(t *testing.T) {
	fs := New()
	dir := t.TempDir()
	src := filepath.Join(dir, "snap.tmp")
	dst := filepath.Join(dir, "taken")

	if err := fs.MkdirAll(filepath.Join(dst, "inner")); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile(src, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := fs.Rename(src, dst); err == nil {
		t.Fatal("expected renaming onto a non-empty directory to fail")
	}
	if exists, _ := fs.Exists(filepath.Join(dst, "inner")); !exists {
		t.Error("expected directory contents to survive")
	}
}
