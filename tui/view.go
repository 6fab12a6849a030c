package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *model) View() string {
	switch m.state {
	case StateConfig:
		return m.configView()
	case StateCounting:
		return m.countingView()
	case StateRunning:
		return m.runningView()
	case StateComplete:
		return m.completeView()
	default:
		return "未知状态"
	}
}

func (m *model) configView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("📂 文件整理工具") + "\n\n")

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("错误: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("1. 选择冲突处理方式：") + "\n")
	if m.focus == FocusPolicy {
		b.WriteString(focusedStyle.Render(m.policyList.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.policyList.View()) + "\n\n")
	}

	b.WriteString(labelStyle.Render("2. 输入要整理的目录：") + "\n")
	if m.focus == FocusDirInput {
		b.WriteString(focusedStyle.Render(m.dirInput.View()) + "\n\n")
	} else {
		b.WriteString(normalStyle.Render(m.dirInput.View()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("操作提示：") + "\n")
	b.WriteString("  • Tab 键切换焦点\n")
	b.WriteString("  • Enter 确认选择/开始整理\n")
	b.WriteString("  • Ctrl+C 退出程序\n")

	return lipgloss.NewStyle().
		Padding(1).
		Render(b.String())
}

func (m *model) countingView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 正在统计文件数量...") + "\n\n")
	b.WriteString(m.spinner.View() + "\n")
	b.WriteString("  目标目录: " + m.dir)

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) runningView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔄 正在整理文件...") + "\n\n")

	b.WriteString(labelStyle.Render("整理进度：") + "\n")
	b.WriteString(m.progressBar.View() + "\n\n")
	b.WriteString(fmt.Sprintf("  已处理: %d / %d\n\n", m.processed, m.totalFiles))

	if len(m.recent) > 0 {
		b.WriteString(labelStyle.Render("最近结果：") + "\n")
		for _, line := range m.recent {
			b.WriteString(filePathStyle.Render("  "+line) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) completeView() string {
	var b strings.Builder

	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ 整理失败") + "\n\n")
		b.WriteString(m.err.Error() + "\n\n")
	} else {
		b.WriteString(successTitleStyle.Render("✅ 整理完成！") + "\n\n")
		b.WriteString(statsBoxStyle.Render(m.renderFinalStats()) + "\n\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", 60)) + "\n")
	b.WriteString(hintStyle.Render("按 Enter 整理新目录，Ctrl+C 退出") + "\n")

	return lipgloss.NewStyle().
		Padding(2).
		Render(b.String())
}

func (m *model) renderFinalStats() string {
	var b strings.Builder

	b.WriteString("📊 最终统计：\n\n")
	b.WriteString(fmt.Sprintf("  • 目标目录：  %s\n", m.dir))
	b.WriteString(fmt.Sprintf("  • 总文件数：  %d\n", m.totalFiles))

	if m.stats != nil {
		b.WriteString(fmt.Sprintf("  • 已移动：    %d\n", m.stats.Moved))
		b.WriteString(fmt.Sprintf("  • 已跳过：    %d\n", m.stats.Skipped))
		b.WriteString(fmt.Sprintf("  • 失败：      %d\n", m.stats.Failed))
		b.WriteString(fmt.Sprintf("  • 总耗时：    %.2f 秒\n", m.stats.Elapsed.Seconds()))
	}

	return b.String()
}
