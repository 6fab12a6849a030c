package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/pkg/calc"
)

var (
	calcNum1      float64
	calcNum2      float64
	calcOperation string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "简单的四则运算计算器",
	Long:  `对两个数执行 add、sub、mul、div 四种运算，除零时报错退出。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := calc.Calculate(calcNum1, calcNum2, calcOperation)
		if err != nil {
			return err
		}

		fmt.Printf("Result = %v\n", result)
		return nil
	},
}

func init() {
	calcCmd.Flags().Float64VarP(&calcNum1, "num1", "a", 0, "第一个数 (必需)")
	calcCmd.Flags().Float64VarP(&calcNum2, "num2", "b", 0, "第二个数 (必需)")
	calcCmd.Flags().StringVarP(&calcOperation, "operation", "o", "", "运算: add, sub, mul, div (必需)")

	if err := calcCmd.MarkFlagRequired("num1"); err != nil {
		fmt.Println("第一个数需要给出")
		return
	}

	if err := calcCmd.MarkFlagRequired("num2"); err != nil {
		fmt.Println("第二个数需要给出")
		return
	}

	if err := calcCmd.MarkFlagRequired("operation"); err != nil {
		fmt.Println("运算类型需要给出")
		return
	}

	rootCmd.AddCommand(calcCmd)
}
