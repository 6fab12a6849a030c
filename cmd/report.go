package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/report"
)

var reportCmd = &cobra.Command{
	Use:   "report <input.xlsx>",
	Short: "从销售数据生成 Excel 报表",
	Long: `读取销售数据工作簿，清除缺失数据行，计算总金额和销售状态，
生成带汇总页、条件格式和图表的最终报表。
输入文件需要 Product、Quantity、Price 三列。`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	thresholds := report.Thresholds{
		High:   cfg.Report.HighThreshold,
		Medium: cfg.Report.MediumThreshold,
	}

	builder := report.NewBuilder(thresholds, logger.Get())

	summary, err := builder.Build(args[0], output)
	if err != nil {
		return err
	}

	fmt.Println("========== 报表汇总 ==========")
	fmt.Printf("总收入: %.2f\n", summary.TotalRevenue)
	fmt.Printf("订单数: %d\n", summary.TotalOrders)
	fmt.Printf("High 订单: %d\n", summary.HighCount)
	fmt.Printf("Medium 订单: %d\n", summary.MediumCount)
	fmt.Printf("Low 订单: %d\n", summary.LowCount)
	if summary.DroppedRows > 0 {
		fmt.Printf("清除缺失行: %d\n", summary.DroppedRows)
	}
	fmt.Println("============================")
	fmt.Printf("输出文件: %s\n", output)

	return nil
}

func init() {
	reportCmd.Flags().StringP("output", "o", "Final_Excel_Report.xlsx", "输出文件路径")

	rootCmd.AddCommand(reportCmd)
}
