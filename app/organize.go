package app

import (
	"fmt"

	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

type OrganizeOptions struct {
	Directory string
	Collision string
	Verbose   bool
	LogLevel  string
	LogFile   string
}

// BuildTable 从配置构建分类表，未配置时使用内置默认表
func BuildTable(cfg *config.Config) (organizer.Table, error) {
	table := organizer.DefaultTable()

	if len(cfg.Organizer.Categories) > 0 {
		table = make(organizer.Table, 0, len(cfg.Organizer.Categories))
		for _, c := range cfg.Organizer.Categories {
			table = append(table, organizer.Category{
				Name:       c.Name,
				Extensions: c.Extensions,
			})
		}
	}

	// 配置加载阶段就拒绝重复扩展名
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("分类表配置无效: %w", err)
	}

	return table, nil
}

func RunOrganize(opts *OrganizeOptions) (*organizer.Stats, error) {
	logLevel := opts.LogLevel
	if opts.Verbose {
		logLevel = "debug"
	}

	if err := logger.Init(logLevel, opts.LogFile); err != nil {
		return nil, err
	}

	cfg := config.Get()

	table, err := BuildTable(cfg)
	if err != nil {
		return nil, err
	}

	collision := opts.Collision
	if collision == "" {
		collision = cfg.Organizer.Collision
	}

	policy, err := organizer.ParseCollisionPolicy(collision)
	if err != nil {
		return nil, err
	}

	logger.Get().Info().Msgf("目标目录: %s", opts.Directory)
	logger.Get().Info().Msgf("冲突策略: %s", policy)

	org := organizer.New(table, policy, logger.Get())

	stats, err := org.Organize(opts.Directory)
	if err != nil {
		return nil, fmt.Errorf("整理目录失败: %w", err)
	}

	return stats, nil
}
