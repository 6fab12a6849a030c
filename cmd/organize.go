package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/app"
	"github.com/moyu-x/file-organizer/config"
)

var organizeCmd = &cobra.Command{
	Use:   "organize <directory>",
	Short: "按扩展名整理目录中的文件",
	Long: `扫描目录的直接子文件（不递归进入子目录），按分类表把文件移动到
对应的分类子目录，保留原文件名。扩展名不在分类表中的文件保持原位。
分类表可以在配置文件中自定义，留空时使用内置默认表。`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	collision, _ := cmd.Flags().GetString("collision")
	verbose, _ := cmd.Flags().GetBool("verbose")
	logFile, _ := cmd.Flags().GetString("log-file")

	if logFile == "" {
		logFile = cfg.Logging.File
	}

	opts := &app.OrganizeOptions{
		Directory: args[0],
		Collision: collision,
		Verbose:   verbose,
		LogLevel:  cfg.Logging.Level,
		LogFile:   logFile,
	}

	stats, err := app.RunOrganize(opts)
	if err != nil {
		return err
	}

	fmt.Println(stats.String())

	return nil
}

func init() {
	organizeCmd.Flags().String("collision", "", "目标文件已存在时的策略: fail 或 rename（默认读取配置）")
	organizeCmd.Flags().Bool("verbose", false, "显示详细日志")
	organizeCmd.Flags().String("log-file", "", "日志文件路径（追加写入）")

	rootCmd.AddCommand(organizeCmd)
}
