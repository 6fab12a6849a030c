package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/app"
	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/organizer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <files...>",
	Short: "查看文件的分类和内容类型",
	Long: `对每个文件输出扩展名对应的分类和根据文件头识别出的 MIME 类型，
用于在整理前确认分类表的效果。不移动任何文件。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	table, err := app.BuildTable(cfg)
	if err != nil {
		return err
	}

	org := organizer.New(table, organizer.CollisionFail, logger.Get())

	for _, path := range args {
		category, ok := org.Categorize(filepath.Base(path))
		if !ok {
			category = "-"
		}

		mime, err := org.DetectType(path)
		if err != nil {
			logger.Get().Error().Err(err).Msgf("检测文件失败: %s", path)
			continue
		}

		fmt.Printf("%s\n  分类: %s\n  类型: %s\n", path, category, mime)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
