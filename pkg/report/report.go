package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	StatusHigh   = "High"
	StatusMedium = "Medium"
	StatusLow    = "Low"

	dataSheet    = "Sales Data"
	summarySheet = "Summary"
	chartSheet   = "Charts"
)

// 各状态的填充色，与最终报表的条件格式一致
var statusFills = map[string]string{
	StatusHigh:   "C6EFCE",
	StatusMedium: "FFEB9C",
	StatusLow:    "FFC7CE",
}

// Thresholds 销售状态的金额阈值
type Thresholds struct {
	High   float64
	Medium float64
}

// Summary 报表汇总指标
type Summary struct {
	TotalRevenue float64
	TotalOrders  int
	HighCount    int
	MediumCount  int
	LowCount     int
	DroppedRows  int
}

// Builder 从销售数据工作簿生成最终报表
type Builder struct {
	thresholds Thresholds
	log        *zerolog.Logger
}

func NewBuilder(thresholds Thresholds, log *zerolog.Logger) *Builder {
	return &Builder{thresholds: thresholds, log: log}
}

// row 清洗后的一行销售数据
type row struct {
	cells    []string
	product  string
	quantity float64
	price    float64
	total    float64
	status   string
}

// Build 读取销售数据，生成带汇总、条件格式和图表的报表
func (b *Builder) Build(inputPath, outputPath string) (*Summary, error) {
	input, err := excelize.OpenFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("打开输入文件失败: %w", err)
	}
	defer input.Close()

	sheet := input.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("输入文件没有工作表")
	}

	rawRows, err := input.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(rawRows) < 2 {
		return nil, fmt.Errorf("输入文件没有数据行")
	}

	header := rawRows[0]
	productCol, quantityCol, priceCol, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	b.log.Info().Str("sheet", sheet).Int("rows", len(rawRows)-1).Msg("已加载销售数据")

	rows, summary := b.cleanRows(rawRows[1:], productCol, quantityCol, priceCol)
	if summary.DroppedRows > 0 {
		b.log.Info().Int("dropped", summary.DroppedRows).Msg("已清除缺失数据行")
	}

	if err := b.writeWorkbook(outputPath, header, rows, summary, productCol); err != nil {
		return nil, err
	}

	b.log.Info().Str("output", outputPath).Msg("报表生成完成")
	return summary, nil
}

// locateColumns 按表头名定位需要的列
func locateColumns(header []string) (product, quantity, price int, err error) {
	product, quantity, price = -1, -1, -1

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "Product":
			product = i
		case "Quantity":
			quantity = i
		case "Price":
			price = i
		}
	}

	if product < 0 || quantity < 0 || price < 0 {
		return 0, 0, 0, fmt.Errorf("表头缺少必需的列 (Product, Quantity, Price): %v", header)
	}
	return product, quantity, price, nil
}

// cleanRows 丢弃缺失或无法解析的行，并计算总额和状态
func (b *Builder) cleanRows(rawRows [][]string, productCol, quantityCol, priceCol int) ([]row, *Summary) {
	summary := &Summary{}
	rows := make([]row, 0, len(rawRows))

	for _, raw := range rawRows {
		r, ok := b.parseRow(raw, productCol, quantityCol, priceCol)
		if !ok {
			summary.DroppedRows++
			continue
		}

		summary.TotalOrders++
		summary.TotalRevenue += r.total
		switch r.status {
		case StatusHigh:
			summary.HighCount++
		case StatusMedium:
			summary.MediumCount++
		default:
			summary.LowCount++
		}

		rows = append(rows, r)
	}

	return rows, summary
}

func (b *Builder) parseRow(raw []string, productCol, quantityCol, priceCol int) (row, bool) {
	maxCol := productCol
	if quantityCol > maxCol {
		maxCol = quantityCol
	}
	if priceCol > maxCol {
		maxCol = priceCol
	}
	if len(raw) <= maxCol {
		return row{}, false
	}

	product := strings.TrimSpace(raw[productCol])
	if product == "" {
		return row{}, false
	}

	quantity, err := strconv.ParseFloat(strings.TrimSpace(raw[quantityCol]), 64)
	if err != nil {
		return row{}, false
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(raw[priceCol]), 64)
	if err != nil {
		return row{}, false
	}

	total := quantity * price

	return row{
		cells:    raw,
		product:  product,
		quantity: quantity,
		price:    price,
		total:    total,
		status:   b.status(total),
	}, true
}

func (b *Builder) status(total float64) string {
	switch {
	case total >= b.thresholds.High:
		return StatusHigh
	case total >= b.thresholds.Medium:
		return StatusMedium
	default:
		return StatusLow
	}
}

// writeWorkbook 输出最终工作簿：数据页、汇总页、图表页
func (b *Builder) writeWorkbook(outputPath string, header []string, rows []row, summary *Summary, productCol int) error {
	out := excelize.NewFile()
	defer out.Close()

	if err := out.SetSheetName(out.GetSheetName(0), dataSheet); err != nil {
		return fmt.Errorf("重命名工作表失败: %w", err)
	}

	totalCol := len(header)
	statusCol := len(header) + 1

	fullHeader := append(append([]string{}, header...), "Total Amount", "Sales Status")
	if err := out.SetSheetRow(dataSheet, "A1", &fullHeader); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}

	for i, r := range rows {
		rowNum := i + 2

		values := make([]interface{}, 0, statusCol+1)
		for col := 0; col < len(header); col++ {
			// excelize 会去掉行尾的空单元格，这里补齐
			cell := ""
			if col < len(r.cells) {
				cell = r.cells[col]
			}
			values = append(values, cell)
		}
		values = append(values, r.total, r.status)

		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := out.SetSheetRow(dataSheet, cell, &values); err != nil {
			return fmt.Errorf("写入数据行失败: %w", err)
		}
	}

	if err := b.applyStatusFills(out, rows, statusCol); err != nil {
		return err
	}

	if err := b.writeSummary(out, summary); err != nil {
		return err
	}

	if err := b.addCharts(out, len(rows), productCol, totalCol); err != nil {
		return err
	}

	if err := out.SaveAs(outputPath); err != nil {
		return fmt.Errorf("保存报表失败: %w", err)
	}
	return nil
}

// applyStatusFills 按销售状态给状态列上底色
func (b *Builder) applyStatusFills(out *excelize.File, rows []row, statusCol int) error {
	styles := make(map[string]int, len(statusFills))
	for status, color := range statusFills {
		styleID, err := out.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("创建样式失败: %w", err)
		}
		styles[status] = styleID
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(statusCol+1, i+2)
		if err != nil {
			return err
		}
		if err := out.SetCellStyle(dataSheet, cell, cell, styles[r.status]); err != nil {
			return fmt.Errorf("设置单元格样式失败: %w", err)
		}
	}
	return nil
}

func (b *Builder) writeSummary(out *excelize.File, summary *Summary) error {
	if _, err := out.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("创建汇总页失败: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Revenue", summary.TotalRevenue},
		{"Total Orders", summary.TotalOrders},
		{"High Sales Orders", summary.HighCount},
		{"Medium Sales Orders", summary.MediumCount},
		{"Low Sales Orders", summary.LowCount},
	}

	for i, values := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		vals := values
		if err := out.SetSheetRow(summarySheet, cell, &vals); err != nil {
			return fmt.Errorf("写入汇总行失败: %w", err)
		}
	}
	return nil
}

// addCharts 图表页：产品销售额柱状图和状态分布饼图
func (b *Builder) addCharts(out *excelize.File, rowCount, productCol, totalCol int) error {
	if _, err := out.NewSheet(chartSheet); err != nil {
		return fmt.Errorf("创建图表页失败: %w", err)
	}

	productName, err := excelize.ColumnNumberToName(productCol + 1)
	if err != nil {
		return err
	}
	totalName, err := excelize.ColumnNumberToName(totalCol + 1)
	if err != nil {
		return err
	}

	lastRow := rowCount + 1

	barChart := &excelize.Chart{
		Type:  excelize.Col,
		Title: []excelize.RichTextRun{{Text: "Product Wise Total Sales"}},
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$%s$1", dataSheet, totalName),
			Categories: fmt.Sprintf("'%s'!$%s$2:$%s$%d", dataSheet, productName, productName, lastRow),
			Values:     fmt.Sprintf("'%s'!$%s$2:$%s$%d", dataSheet, totalName, totalName, lastRow),
		}},
		XAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Product"}}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "Total Amount"}}},
	}
	if err := out.AddChart(chartSheet, "A1", barChart); err != nil {
		return fmt.Errorf("创建柱状图失败: %w", err)
	}

	pieChart := &excelize.Chart{
		Type:  excelize.Pie,
		Title: []excelize.RichTextRun{{Text: "Sales Status Distribution"}},
		Series: []excelize.ChartSeries{{
			Categories: fmt.Sprintf("'%s'!$A$4:$A$6", summarySheet),
			Values:     fmt.Sprintf("'%s'!$B$4:$B$6", summarySheet),
		}},
	}
	if err := out.AddChart(chartSheet, "A20", pieChart); err != nil {
		return fmt.Errorf("创建饼图失败: %w", err)
	}

	return nil
}
