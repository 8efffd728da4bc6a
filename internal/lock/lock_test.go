package lock

import (
	"errors"
	"os"
	"testing"
)

// TestAcquire_ExclusiveAcrossHandles는 테스트 코드 동작을 검증하거나 보조합니다.
func TestAcquire_ExclusiveAcrossHandles(t *testing.T) {
	// 같은 디렉터리에 대한 두 번째 잠금은 ErrLocked로 실패해야 한다.
	dir := t.TempDir()

	first, err := Acquire(dir)
	if err != nil {
		t.Fatalf("first acquire failed: %v", err)
	}

	if _, err := Acquire(dir); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	second, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire after release failed: %v", err)
	}
	defer second.Release()
}

// TestAcquire_CreatesNoFiles는 테스트 코드 동작을 검증하거나 보조합니다.
func TestAcquire_CreatesNoFiles(t *testing.T) {
	// 잠금은 디렉터리 안에 어떤 파일도 만들지 않아야 한다.
	dir := t.TempDir()

	l, err := Acquire(dir)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	defer l.Release()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty directory, got %d entries", len(entries))
	}
}

func TestAcquire_Errors(t *testing.T) {
	if _, err := Acquire(""); !errors.Is(err, ErrDirRequired) {
		t.Fatalf("expected ErrDirRequired, got %v", err)
	}
	if _, err := Acquire(t.TempDir() + "/missing"); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	l, err := Acquire(t.TempDir())
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if err := l.Release(); err != nil {
		t.Fatalf("second release failed: %v", err)
	}

	var nilLock *DirLock
	if err := nilLock.Release(); err != nil {
		t.Fatalf("nil release failed: %v", err)
	}
}
