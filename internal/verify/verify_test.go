package verify

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// TestVerifierVerify_Success는 테스트 코드 동작을 검증하거나 보조합니다.
func TestVerifierVerify_Success(t *testing.T) {
	// 원본이 사라지고 대상 크기가 같으면 성공해야 한다.
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/photos/2024-01-01.jpg", []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to write dest file: %v", err)
	}

	if err := New(fs).Verify("/photos/IMG_1.jpg", "/photos/2024-01-01.jpg", 3); err != nil {
		t.Fatalf("expected verify success, got %v", err)
	}
}

// TestVerifierVerify_DestinationMissing는 테스트 코드 동작을 검증하거나 보조합니다.
func TestVerifierVerify_DestinationMissing(t *testing.T) {
	// 대상 파일이 없으면 실패해야 한다.
	fs := afero.NewMemMapFs()

	err := New(fs).Verify("/photos/IMG_1.jpg", "/photos/2024-01-01.jpg", 3)
	if err == nil || !strings.Contains(err.Error(), "destination file not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestVerifierVerify_SizeMismatch는 테스트 코드 동작을 검증하거나 보조합니다.
func TestVerifierVerify_SizeMismatch(t *testing.T) {
	// 대상 크기가 기대값과 다르면 즉시 실패해야 한다.
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/photos/2024-01-01.jpg", []byte("abc"), 0644); err != nil {
		t.Fatalf("failed to write dest file: %v", err)
	}

	err := New(fs).Verify("/photos/IMG_1.jpg", "/photos/2024-01-01.jpg", 4)
	if err == nil || !strings.Contains(err.Error(), "size mismatch") {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestVerifierVerify_SourceStillPresent는 테스트 코드 동작을 검증하거나 보조합니다.
func TestVerifierVerify_SourceStillPresent(t *testing.T) {
	// 이름 변경 후에도 원본이 남아 있으면 실패해야 한다.
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/photos/IMG_1.jpg", []byte("abc"), 0644)
	afero.WriteFile(fs, "/photos/2024-01-01.jpg", []byte("abc"), 0644)

	err := New(fs).Verify("/photos/IMG_1.jpg", "/photos/2024-01-01.jpg", 3)
	if err == nil || !strings.Contains(err.Error(), "source still present") {
		t.Fatalf("unexpected error: %v", err)
	}
}
