package organizer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/h2non/filetype"
)

// 文件类型检测所需的文件头部大小（字节）
const fileHeaderSize = 261

// UnknownType 内容无法识别时的 MIME 标识
const UnknownType = "unknown"

// DetectType 根据文件头部内容识别 MIME 类型
// 与扩展名分类互补，用于检查扩展名和内容是否一致
func (o *Organizer) DetectType(path string) (string, error) {
	file, err := o.Fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("打开文件失败: %w", err)
	}
	defer file.Close()

	head := make([]byte, fileHeaderSize)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("读取文件头部失败: %w", err)
	}

	kind, err := filetype.Match(head[:n])
	if err != nil {
		return "", fmt.Errorf("检测文件类型失败: %w", err)
	}

	if kind == filetype.Unknown {
		return UnknownType, nil
	}

	return kind.MIME.Value, nil
}

// Categorize 返回文件扩展名对应的分类，未匹配时 ok 为 false
func (o *Organizer) Categorize(name string) (string, bool) {
	return o.table.Match(filepath.Ext(name))
}
