package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestCreatedAt_TruncatesToUTCSeconds는 테스트 코드 동작을 검증하거나 보조합니다.
func TestCreatedAt_TruncatesToUTCSeconds(t *testing.T) {
	// 생성 시간은 UTC로 변환되고 초 미만은 버려져야 한다.
	loc := time.FixedZone("KST", 9*60*60)
	raw := time.Date(2024, 1, 1, 8, 30, 15, 999_000_000, loc)
	src := Func(func(string, os.FileInfo) (time.Time, error) { return raw, nil })

	got, err := CreatedAt(src, "/photos/a.jpg", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2023, 12, 31, 23, 30, 15, 0, time.UTC)
	if !got.Equal(want) || got.Location() != time.UTC {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

// TestCreatedAt_RejectsPreEpoch는 테스트 코드 동작을 검증하거나 보조합니다.
func TestCreatedAt_RejectsPreEpoch(t *testing.T) {
	// 유닉스 epoch 이전 시간은 변환 불가 에러가 되어야 한다.
	src := Func(func(string, os.FileInfo) (time.Time, error) {
		return time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), nil
	})

	if _, err := CreatedAt(src, "/photos/old.jpg", nil); err == nil {
		t.Fatal("expected error for pre-epoch creation time")
	}
}

// TestCreatedAt_PropagatesSourceError는 테스트 코드 동작을 검증하거나 보조합니다.
func TestCreatedAt_PropagatesSourceError(t *testing.T) {
	// Source 에러는 그대로 전달되어야 한다.
	src := Func(func(string, os.FileInfo) (time.Time, error) { return time.Time{}, ErrNoBirthTime })

	_, err := CreatedAt(src, "/photos/a.jpg", nil)
	if !errors.Is(err, ErrNoBirthTime) {
		t.Fatalf("expected ErrNoBirthTime, got %v", err)
	}
}

// TestBirthTime_RealFile는 테스트 코드 동작을 검증하거나 보조합니다.
func TestBirthTime_RealFile(t *testing.T) {
	// 실제 파일의 생성 시간은 현재 시각 근처여야 한다 (지원하지 않는 파일시스템은 건너뜀).
	path := filepath.Join(t.TempDir(), "photo.jpg")
	before := time.Now().Add(-time.Minute)
	if err := os.WriteFile(path, []byte("fake jpg"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	got, err := NewBirthTime().CreationTime(path, nil)
	if errors.Is(err, ErrNoBirthTime) {
		t.Skip("filesystem does not record birth time")
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Before(before) || got.After(time.Now().Add(time.Minute)) {
		t.Fatalf("birth time %v out of range", got)
	}
}

// TestBirthTime_MissingFile는 테스트 코드 동작을 검증하거나 보조합니다.
func TestBirthTime_MissingFile(t *testing.T) {
	// 존재하지 않는 파일은 stat 에러를 반환해야 한다.
	_, err := NewBirthTime().CreationTime(filepath.Join(t.TempDir(), "missing.jpg"), nil)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
