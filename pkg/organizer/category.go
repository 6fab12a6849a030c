package organizer

import (
	"fmt"
	"strings"
)

// Category 一个分类，对应目标目录下的一个子目录
type Category struct {
	Name       string
	Extensions []string
}

// Table 有序分类表，匹配时按声明顺序第一个命中的分类生效
type Table []Category

// DefaultTable 内置默认分类表
func DefaultTable() Table {
	return Table{
		{Name: "Images", Extensions: []string{".png", ".jpg", ".jpeg"}},
		{Name: "Documents", Extensions: []string{".pdf", ".docx", ".txt"}},
		{Name: "Videos", Extensions: []string{".mp4", ".mkv"}},
		{Name: "Scripts", Extensions: []string{".py", ".sh"}},
		{Name: "Archives", Extensions: []string{".zip", ".rar"}},
	}
}

// Validate 校验分类表
// 同一个扩展名出现在两个分类中时返回错误，避免依赖隐式的先匹配规则
func (t Table) Validate() error {
	seen := make(map[string]string)

	for _, category := range t {
		if category.Name == "" {
			return fmt.Errorf("分类名称不能为空")
		}

		for _, ext := range category.Extensions {
			normalized := NormalizeExt(ext)
			if normalized == "" || normalized == "." {
				return fmt.Errorf("分类 %q 包含无效扩展名 %q", category.Name, ext)
			}

			if owner, ok := seen[normalized]; ok && owner != category.Name {
				return fmt.Errorf("扩展名 %q 同时属于分类 %q 和 %q", normalized, owner, category.Name)
			}
			seen[normalized] = category.Name
		}
	}

	return nil
}

// Match 按声明顺序查找扩展名对应的分类
func (t Table) Match(ext string) (string, bool) {
	normalized := NormalizeExt(ext)

	for _, category := range t {
		for _, candidate := range category.Extensions {
			if NormalizeExt(candidate) == normalized {
				return category.Name, true
			}
		}
	}

	return "", false
}

// NormalizeExt 扩展名统一为小写并带前导点
// "PDF" 和 ".PDF" 都归一化为 ".pdf"
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
