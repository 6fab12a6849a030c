package organizer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CollisionPolicy 目标文件已存在时的处理策略
type CollisionPolicy string

const (
	// CollisionFail 报告冲突错误，跳过该文件，继续处理其余文件
	CollisionFail CollisionPolicy = "fail"
	// CollisionRename 内容相同时视为重复跳过，否则用 uuid 前缀重命名后移动
	CollisionRename CollisionPolicy = "rename"
)

var (
	ErrPathNotFound = errors.New("目标目录不存在")
	ErrDestExists   = errors.New("目标文件已存在")

	// errDuplicate 冲突文件内容与已有文件完全相同
	errDuplicate = errors.New("文件内容与目标文件相同")
)

// ParseCollisionPolicy 解析冲突策略字符串
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(strings.ToLower(s)) {
	case CollisionFail:
		return CollisionFail, nil
	case CollisionRename:
		return CollisionRename, nil
	default:
		return "", fmt.Errorf("无效的冲突策略: %q (可选: fail, rename)", s)
	}
}

// Stats 单次整理的统计结果
type Stats struct {
	Moved   int
	Skipped int
	Failed  int
	Elapsed time.Duration
}

// 单个文件的处理结果
const (
	ActionMoved   = "moved"
	ActionSkipped = "skipped"
	ActionFailed  = "failed"
)

// Outcome 单个文件的处理结果，用于进度展示
type Outcome struct {
	Name     string
	Category string
	Action   string
}

// Organizer 按扩展名整理目录中的文件
// 只处理目标目录的直接子文件，不递归进入子目录
type Organizer struct {
	Fs  afero.Fs
	Log *zerolog.Logger

	// OnResult 每处理完一个文件后的回调，为 nil 时不回调
	OnResult func(Outcome)

	table     Table
	collision CollisionPolicy
}

// New 创建整理器
// 日志实例由调用方注入，测试时可传入 discard logger
func New(table Table, collision CollisionPolicy, log *zerolog.Logger) *Organizer {
	return &Organizer{
		Fs:        afero.NewOsFs(),
		Log:       log,
		table:     table,
		collision: collision,
	}
}

// Organize 整理目录中的文件
// 目录不存在时返回 ErrPathNotFound，不做任何文件系统修改
func (o *Organizer) Organize(dir string) (*Stats, error) {
	start := time.Now()

	exists, err := afero.DirExists(o.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("检查目录失败: %w", err)
	}
	if !exists {
		o.Log.Error().Str("path", dir).Msg("Provided folder does not exist")
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, dir)
	}

	o.Log.Info().Str("path", dir).Msg("开始整理目录")

	// 一次性读出目录快照，移动文件不会影响后续遍历
	entries, err := afero.ReadDir(o.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录失败: %w", err)
	}

	stats := &Stats{}

	for _, entry := range entries {
		// 跳过子目录，包括之前运行时创建的分类目录
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))

		category, ok := o.table.Match(ext)
		if !ok {
			stats.Skipped++
			o.Log.Info().Msgf("Skipped file: %s", entry.Name())
			o.report(Outcome{Name: entry.Name(), Action: ActionSkipped})
			continue
		}

		if err := o.moveToCategory(dir, entry.Name(), category); err != nil {
			if errors.Is(err, errDuplicate) {
				stats.Skipped++
				o.Log.Info().Msgf("Skipped duplicate: %s", entry.Name())
				o.report(Outcome{Name: entry.Name(), Category: category, Action: ActionSkipped})
				continue
			}
			stats.Failed++
			o.Log.Error().Err(err).Msgf("移动文件失败: %s", entry.Name())
			o.report(Outcome{Name: entry.Name(), Category: category, Action: ActionFailed})
			continue
		}

		stats.Moved++
		o.Log.Info().Msgf("Moved %s -> %s", entry.Name(), category)
		o.report(Outcome{Name: entry.Name(), Category: category, Action: ActionMoved})
	}

	stats.Elapsed = time.Since(start)
	o.Log.Info().Msg("目录整理完成")

	return stats, nil
}

func (o *Organizer) report(outcome Outcome) {
	if o.OnResult != nil {
		o.OnResult(outcome)
	}
}

// moveToCategory 把文件移动到分类子目录，保留原文件名
func (o *Organizer) moveToCategory(dir, name, category string) error {
	categoryDir := filepath.Join(dir, category)

	// 目录已存在时 MkdirAll 不报错
	if err := o.Fs.MkdirAll(categoryDir, 0755); err != nil {
		return fmt.Errorf("创建分类目录失败: %w", err)
	}

	src := filepath.Join(dir, name)
	dst := filepath.Join(categoryDir, name)

	exists, err := afero.Exists(o.Fs, dst)
	if err != nil {
		return fmt.Errorf("检查目标文件失败: %w", err)
	}

	if exists {
		dst, err = o.resolveCollision(src, dst, categoryDir, name)
		if err != nil {
			return err
		}
	}

	return o.moveFile(src, dst)
}

// resolveCollision 根据策略处理目标文件已存在的情况
func (o *Organizer) resolveCollision(src, dst, categoryDir, name string) (string, error) {
	if o.collision == CollisionFail {
		return "", fmt.Errorf("%w: %s", ErrDestExists, dst)
	}

	same, err := o.sameContent(src, dst)
	if err != nil {
		return "", fmt.Errorf("比较文件内容失败: %w", err)
	}
	if same {
		return "", errDuplicate
	}

	// 内容不同，用 uuid 前缀生成新文件名再移动
	for {
		newName := uuid.New().String() + name
		candidate := filepath.Join(categoryDir, newName)

		exists, err := afero.Exists(o.Fs, candidate)
		if err != nil {
			return "", fmt.Errorf("检查目标文件失败: %w", err)
		}
		if !exists {
			o.Log.Debug().
				Str("original", dst).
				Str("renamed", candidate).
				Msg("文件名冲突，自动重命名")
			return candidate, nil
		}
	}
}

// moveFile 使用 rename 移动文件，失败时（可能是跨卷移动）退回复制后删除
func (o *Organizer) moveFile(src, dst string) error {
	if err := o.Fs.Rename(src, dst); err == nil {
		return nil
	}

	sourceFile, err := o.Fs.Open(src)
	if err != nil {
		return fmt.Errorf("打开源文件失败: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := o.Fs.Create(dst)
	if err != nil {
		return fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer destFile.Close()

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		return fmt.Errorf("复制文件内容失败: %w", err)
	}

	if err := o.Fs.Remove(src); err != nil {
		return fmt.Errorf("删除原文件失败: %w", err)
	}

	return nil
}

// sameContent 用 xxHash 比较两个文件内容是否一致
func (o *Organizer) sameContent(a, b string) (bool, error) {
	hashA, err := o.hashFile(a)
	if err != nil {
		return false, err
	}

	hashB, err := o.hashFile(b)
	if err != nil {
		return false, err
	}

	return hashA == hashB, nil
}

func (o *Organizer) hashFile(path string) (uint64, error) {
	file, err := o.Fs.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		return 0, err
	}

	return hash.Sum64(), nil
}

func (s *Stats) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 整理统计 ==========\n")
	buf.WriteString(fmt.Sprintf("已移动: %d\n", s.Moved))
	buf.WriteString(fmt.Sprintf("已跳过: %d\n", s.Skipped))
	buf.WriteString(fmt.Sprintf("失败: %d\n", s.Failed))
	buf.WriteString(fmt.Sprintf("总耗时: %.2f 秒\n", s.Elapsed.Seconds()))
	buf.WriteString("============================")

	return buf.String()
}
