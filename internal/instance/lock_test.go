package instance

import (
	"path/filepath"
	"testing"
)

func TestLockAndCleanup(t *testing.T) {
	dir := t.TempDir()

	// First lock should succeed
	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() failed: %v", err)
	}
	if fl == nil {
		t.Fatal("Lock() returned nil flock")
	}

	// Second lock should fail
	_, err = Lock(dir)
	if err == nil {
		t.Fatal("second Lock() should have failed")
	}

	// Cleanup should release the lock
	Cleanup(fl)

	fl2, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() after Cleanup should succeed: %v", err)
	}
	Cleanup(fl2)
}

func TestLock_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "not-yet-created")

	fl, err := Lock(dir)
	if err != nil {
		t.Fatalf("Lock() should create the data dir: %v", err)
	}
	Cleanup(fl)
}
