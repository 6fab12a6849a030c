package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "file-organizer",
	Short: "一个按扩展名整理文件的命令行工具箱",
	Long: `File Organizer 是一个命令行工具集，核心功能是按扩展名整理目录中的文件。

主要功能:
- 按分类表整理目录的直接子文件（不递归）
- 查看单个文件的分类和内容类型
- 从销售数据生成带图表的 Excel 报表
- 查询城市当前天气（带本地缓存）
- 交互式 TUI 整理界面`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
