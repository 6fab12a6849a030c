package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

func TestBuildTable_Default(t *testing.T) {
	table, err := BuildTable(&config.Config{})
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}

	category, ok := table.Match(".pdf")
	if !ok || category != "Documents" {
		t.Errorf("Expected default table to map .pdf -> Documents, got %q", category)
	}
}

func TestBuildTable_FromConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Organizer.Categories = []config.CategoryConfig{
		{Name: "Images", Extensions: []string{".png", ".jpg", ".jpeg"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt", ".pptx", ".xlsx"}},
	}

	table, err := BuildTable(cfg)
	if err != nil {
		t.Fatalf("BuildTable() error = %v", err)
	}

	// 配置的扩展表替换默认表
	category, ok := table.Match(".xlsx")
	if !ok || category != "Documents" {
		t.Errorf("Expected .xlsx -> Documents, got %q", category)
	}

	if _, ok := table.Match(".mp4"); ok {
		t.Error("Expected .mp4 to be absent from the configured table")
	}
}

func TestBuildTable_RejectsDuplicates(t *testing.T) {
	cfg := &config.Config{}
	cfg.Organizer.Categories = []config.CategoryConfig{
		{Name: "Images", Extensions: []string{".png"}},
		{Name: "Pictures", Extensions: []string{".png"}},
	}

	if _, err := BuildTable(cfg); err == nil {
		t.Error("Expected error for duplicate extension in config")
	}
}

func TestRunOrganize(t *testing.T) {
	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "a.txt"), []byte("content"), 0644); err != nil {
		t.Fatalf("创建测试文件失败: %v", err)
	}

	stats, err := RunOrganize(&OrganizeOptions{
		Directory: tempDir,
		Collision: "fail",
		LogLevel:  "error",
	})
	if err != nil {
		t.Fatalf("RunOrganize() error = %v", err)
	}

	if stats.Moved != 1 {
		t.Errorf("Expected 1 moved file, got %d", stats.Moved)
	}

	if _, err := os.Stat(filepath.Join(tempDir, "Documents", "a.txt")); err != nil {
		t.Errorf("Expected Documents/a.txt to exist: %v", err)
	}
}

func TestRunOrganize_MissingDirectory(t *testing.T) {
	_, err := RunOrganize(&OrganizeOptions{
		Directory: filepath.Join(t.TempDir(), "missing"),
		Collision: "fail",
		LogLevel:  "error",
	})
	if !errors.Is(err, organizer.ErrPathNotFound) {
		t.Fatalf("Expected ErrPathNotFound, got %v", err)
	}
}
