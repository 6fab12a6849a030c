package organizer

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestOrganizer_DetectType(t *testing.T) {
	tempDir := t.TempDir()

	writeTestFile(t, filepath.Join(tempDir, "photo.png"), "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	writeTestFile(t, filepath.Join(tempDir, "notes.txt"), "plain text content")

	org := newTestOrganizer(CollisionFail)

	mime, err := org.DetectType(filepath.Join(tempDir, "photo.png"))
	if err != nil {
		t.Fatalf("DetectType() error = %v", err)
	}
	if mime != "image/png" {
		t.Errorf("Expected image/png, got %q", mime)
	}

	// 纯文本没有可识别的文件头
	mime, err = org.DetectType(filepath.Join(tempDir, "notes.txt"))
	if err != nil {
		t.Fatalf("DetectType() error = %v", err)
	}
	if mime != UnknownType {
		t.Errorf("Expected unknown type, got %q", mime)
	}

	if _, err := org.DetectType(filepath.Join(tempDir, "missing.bin")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestOrganizer_Categorize(t *testing.T) {
	org := newTestOrganizer(CollisionFail)

	category, ok := org.Categorize("REPORT.PDF")
	if !ok || category != "Documents" {
		t.Errorf("Expected REPORT.PDF -> Documents, got %q (%v)", category, ok)
	}

	if _, ok := org.Categorize("archive.xyz"); ok {
		t.Error("Expected no category for unknown extension")
	}

	if _, ok := org.Categorize("no_extension"); ok {
		t.Error("Expected no category for file without extension")
	}
}

func TestOrganizer_MemMapFs(t *testing.T) {
	// Organizer 通过 afero 抽象文件系统，内存文件系统同样可用
	org := newTestOrganizer(CollisionFail)
	org.Fs = afero.NewMemMapFs()

	if err := org.Fs.MkdirAll("/data", 0755); err != nil {
		t.Fatalf("创建目录失败: %v", err)
	}
	if err := afero.WriteFile(org.Fs, "/data/a.txt", []byte("text content"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	stats, err := org.Organize("/data")
	if err != nil {
		t.Fatalf("Organize() error = %v", err)
	}
	if stats.Moved != 1 {
		t.Errorf("Expected 1 moved file, got %d", stats.Moved)
	}

	if _, err := org.Fs.Stat("/data/Documents/a.txt"); err != nil {
		t.Errorf("Expected Documents/a.txt in memory fs: %v", err)
	}
}
