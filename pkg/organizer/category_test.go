package organizer

import "testing"

func TestTable_Validate(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Errorf("默认分类表应当合法: %v", err)
	}

	duplicated := Table{
		{Name: "Images", Extensions: []string{".png", ".jpg"}},
		{Name: "Pictures", Extensions: []string{".jpg"}},
	}
	if err := duplicated.Validate(); err == nil {
		t.Error("Expected error for duplicated extension across categories")
	}

	unnamed := Table{{Name: "", Extensions: []string{".txt"}}}
	if err := unnamed.Validate(); err == nil {
		t.Error("Expected error for empty category name")
	}

	invalid := Table{{Name: "Docs", Extensions: []string{"."}}}
	if err := invalid.Validate(); err == nil {
		t.Error("Expected error for invalid extension")
	}
}

func TestTable_Match(t *testing.T) {
	table := DefaultTable()

	category, ok := table.Match(".pdf")
	if !ok || category != "Documents" {
		t.Errorf("Expected .pdf -> Documents, got %q (%v)", category, ok)
	}

	// 大小写不敏感
	category, ok = table.Match(".JPG")
	if !ok || category != "Images" {
		t.Errorf("Expected .JPG -> Images, got %q (%v)", category, ok)
	}

	if _, ok := table.Match(".xyz"); ok {
		t.Error("Expected .xyz to have no category")
	}
}

func TestTable_MatchFirstWins(t *testing.T) {
	// 扩展名重复的畸形表，约定按声明顺序第一个命中
	table := Table{
		{Name: "First", Extensions: []string{".dat"}},
		{Name: "Second", Extensions: []string{".dat"}},
	}

	category, ok := table.Match(".dat")
	if !ok || category != "First" {
		t.Errorf("Expected first declared category to win, got %q", category)
	}
}

func TestNormalizeExt(t *testing.T) {
	cases := map[string]string{
		".PDF": ".pdf",
		"pdf":  ".pdf",
		" .Md": ".md",
		"":     "",
	}

	for input, expected := range cases {
		if got := NormalizeExt(input); got != expected {
			t.Errorf("NormalizeExt(%q) = %q, expected %q", input, got, expected)
		}
	}
}
