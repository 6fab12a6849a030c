package report

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

func writeFixture(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("计算单元格坐标失败: %v", err)
		}
		vals := row
		if err := f.SetSheetRow("Sheet1", cell, &vals); err != nil {
			t.Fatalf("写入测试数据失败: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "sales_data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("保存测试文件失败: %v", err)
	}
	return path
}

func defaultBuilder() *Builder {
	log := zerolog.Nop()
	return NewBuilder(Thresholds{High: 100000, Medium: 50000}, &log)
}

func TestBuilder_Build(t *testing.T) {
	input := writeFixture(t, [][]interface{}{
		{"Date", "Product", "Quantity", "Price"},
		{"2026-01-02", "Laptop", 2, 60000},  // 120000 -> High
		{"2026-01-03", "Mouse", 100, 550},   // 55000  -> Medium
		{"2026-01-04", "Cable", 10, 120},    // 1200   -> Low
		{"2026-01-05", "Monitor", "", 9000}, // 缺失数量，应被清除
	})
	output := filepath.Join(t.TempDir(), "report.xlsx")

	summary, err := defaultBuilder().Build(input, output)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if summary.TotalOrders != 3 {
		t.Errorf("Expected 3 orders, got %d", summary.TotalOrders)
	}
	if summary.DroppedRows != 1 {
		t.Errorf("Expected 1 dropped row, got %d", summary.DroppedRows)
	}
	if summary.TotalRevenue != 176200 {
		t.Errorf("Expected total revenue 176200, got %v", summary.TotalRevenue)
	}
	if summary.HighCount != 1 || summary.MediumCount != 1 || summary.LowCount != 1 {
		t.Errorf("Unexpected status counts: %+v", summary)
	}

	out, err := excelize.OpenFile(output)
	if err != nil {
		t.Fatalf("打开输出文件失败: %v", err)
	}
	defer out.Close()

	// 数据页带上计算列
	status, err := out.GetCellValue(dataSheet, "F2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if status != StatusHigh {
		t.Errorf("Expected F2 = High, got %q", status)
	}

	total, err := out.GetCellValue(dataSheet, "E3")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if total != "55000" {
		t.Errorf("Expected E3 = 55000, got %q", total)
	}

	// 汇总页布局与指标
	metric, err := out.GetCellValue(summarySheet, "A4")
	if err != nil {
		t.Fatalf("读取汇总页失败: %v", err)
	}
	if metric != "High Sales Orders" {
		t.Errorf("Expected A4 = High Sales Orders, got %q", metric)
	}

	// 图表页存在
	found := false
	for _, name := range out.GetSheetList() {
		if name == chartSheet {
			found = true
		}
	}
	if !found {
		t.Error("Expected Charts sheet to exist")
	}
}

func TestBuilder_BuildMissingColumns(t *testing.T) {
	input := writeFixture(t, [][]interface{}{
		{"Date", "Item", "Count"},
		{"2026-01-02", "Laptop", 2},
	})
	output := filepath.Join(t.TempDir(), "report.xlsx")

	if _, err := defaultBuilder().Build(input, output); err == nil {
		t.Error("Expected error for missing required columns")
	}
}

func TestBuilder_BuildEmptyWorkbook(t *testing.T) {
	input := writeFixture(t, [][]interface{}{
		{"Date", "Product", "Quantity", "Price"},
	})
	output := filepath.Join(t.TempDir(), "report.xlsx")

	if _, err := defaultBuilder().Build(input, output); err == nil {
		t.Error("Expected error for workbook without data rows")
	}
}

func TestBuilder_StatusThresholds(t *testing.T) {
	b := defaultBuilder()

	cases := map[float64]string{
		100000: StatusHigh,
		99999:  StatusMedium,
		50000:  StatusMedium,
		49999:  StatusLow,
		0:      StatusLow,
	}

	for total, expected := range cases {
		if got := b.status(total); got != expected {
			t.Errorf("status(%v) = %q, expected %q", total, got, expected)
		}
	}
}
