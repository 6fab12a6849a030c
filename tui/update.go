package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/file-organizer/pkg/organizer"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.state == StateConfig {
			return m.updateConfigPhase(msg)
		}

		if m.state == StateComplete && msg.String() == "enter" {
			// 回到配置界面，开始新一轮整理
			next := initialModel()
			*m = next
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case countFilesMsg:
		m.totalFiles = msg.total
		m.state = StateRunning
		return m, tea.Batch(m.startOrganize(), m.spinner.Tick)

	case outcomeMsg:
		m.processed++
		m.appendOutcome(organizer.Outcome(msg))

		if m.totalFiles > 0 {
			percent := float64(m.processed) / float64(m.totalFiles)
			cmds = append(cmds, m.progressBar.SetPercent(percent))
		}

		cmds = append(cmds, waitForOutcome(m.outcomeCh, m.doneCh))
		return m, tea.Batch(cmds...)

	case organizeDoneMsg:
		m.state = StateComplete
		m.stats = msg.stats
		m.err = msg.err
		return m, nil

	case errMsg:
		m.err = msg
		m.state = StateConfig
		return m, nil

	case spinner.TickMsg:
		if m.state == StateCounting || m.state == StateRunning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	if m.state == StateConfig {
		var cmd tea.Cmd
		m.policyList, cmd = m.policyList.Update(msg)
		cmds = append(cmds, cmd)

		m.dirInput, cmd = m.dirInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.state == StateRunning {
		model, cmd := m.progressBar.Update(msg)
		m.progressBar = model.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) updateConfigPhase(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" {
		m.nextFocus()
		m.updateFocusState()
		return m, nil
	}

	if msg.String() == "enter" {
		return m.handleEnterKey()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.policyList, cmd = m.policyList.Update(msg)
	cmds = append(cmds, cmd)
	m.dirInput, cmd = m.dirInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *model) nextFocus() {
	if m.focus == FocusPolicy {
		m.focus = FocusDirInput
	} else {
		m.focus = FocusPolicy
	}
}

func (m *model) updateFocusState() {
	m.policyList.KeyMap.CursorUp.SetEnabled(m.focus == FocusPolicy)
	m.policyList.KeyMap.CursorDown.SetEnabled(m.focus == FocusPolicy)

	if m.focus == FocusDirInput {
		m.dirInput.Focus()
	} else {
		m.dirInput.Blur()
	}
}

func (m *model) handleEnterKey() (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusPolicy:
		if item, ok := m.policyList.SelectedItem().(policyItem); ok {
			m.policy = item.policy
		}
		return m, nil

	case FocusDirInput:
		dir := m.dirInput.Value()
		if dir == "" {
			return m, nil
		}
		m.dir = dir
		m.err = nil
		m.state = StateCounting
		return m, tea.Batch(m.spinner.Tick, countFilesCmd(dir))
	}

	return m, nil
}

func (m *model) handleResize(msg tea.WindowSizeMsg) {
	width := msg.Width

	m.policyList.SetWidth(width - 4)
	m.dirInput.Width = width - 10
	m.progressBar.Width = width - 10
}

func (m *model) appendOutcome(outcome organizer.Outcome) {
	var line string
	switch outcome.Action {
	case organizer.ActionMoved:
		line = fmt.Sprintf("✓ %s -> %s", outcome.Name, outcome.Category)
	case organizer.ActionFailed:
		line = fmt.Sprintf("✗ %s", outcome.Name)
	default:
		line = fmt.Sprintf("- %s", outcome.Name)
	}

	m.recent = append(m.recent, line)
	if len(m.recent) > maxRecentOutcomes {
		m.recent = m.recent[len(m.recent)-maxRecentOutcomes:]
	}
}

// countFilesCmd 先统计目录快照中的文件数量，用于进度展示
func countFilesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		fs := afero.NewOsFs()

		exists, err := afero.DirExists(fs, dir)
		if err != nil {
			return errMsg(err)
		}
		if !exists {
			return errMsg(fmt.Errorf("目录不存在: %s", dir))
		}

		entries, err := afero.ReadDir(fs, dir)
		if err != nil {
			return errMsg(err)
		}

		total := 0
		for _, entry := range entries {
			if !entry.IsDir() {
				total++
			}
		}

		return countFilesMsg{total: total}
	}
}

// startOrganize 在后台运行整理，逐个文件回传结果
func (m *model) startOrganize() tea.Cmd {
	outcomeCh := make(chan organizer.Outcome, 64)
	doneCh := make(chan organizeDoneMsg, 1)
	m.outcomeCh = outcomeCh
	m.doneCh = doneCh

	table := organizer.DefaultTable()
	if cfg != nil && cfg.Table != nil {
		table = cfg.Table
	}

	dir := m.dir
	policy := m.policy

	go func() {
		log := zerolog.Nop()
		org := organizer.New(table, policy, &log)
		org.OnResult = func(o organizer.Outcome) {
			outcomeCh <- o
		}

		stats, err := org.Organize(dir)
		close(outcomeCh)
		doneCh <- organizeDoneMsg{stats: stats, err: err}
	}()

	return waitForOutcome(outcomeCh, doneCh)
}

func waitForOutcome(outcomeCh chan organizer.Outcome, doneCh chan organizeDoneMsg) tea.Cmd {
	return func() tea.Msg {
		if outcome, ok := <-outcomeCh; ok {
			return outcomeMsg(outcome)
		}
		return <-doneCh
	}
}
