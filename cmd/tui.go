package cmd

import (
	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/app"
	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/organizer"
	"github.com/moyu-x/file-organizer/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "交互式整理界面",
	Long:  `启动交互式终端界面，选择冲突策略和目标目录后整理文件，实时显示进度。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		table, err := app.BuildTable(cfg)
		if err != nil {
			return err
		}

		policy, err := organizer.ParseCollisionPolicy(cfg.Organizer.Collision)
		if err != nil {
			return err
		}

		return tui.Run(&tui.Config{
			Table:     table,
			Collision: policy,
		})
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
