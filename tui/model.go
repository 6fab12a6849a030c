package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/moyu-x/file-organizer/pkg/organizer"
)

type State int

const (
	StateConfig State = iota
	StateCounting
	StateRunning
	StateComplete
)

type Focus int

const (
	FocusPolicy Focus = iota
	FocusDirInput
)

// 运行界面最多保留的最近结果条数
const maxRecentOutcomes = 8

type model struct {
	state  State
	focus  Focus
	policy organizer.CollisionPolicy
	dir    string

	totalFiles int
	processed  int
	recent     []string
	stats      *organizer.Stats
	err        error

	outcomeCh chan organizer.Outcome
	doneCh    chan organizeDoneMsg

	policyList  list.Model
	dirInput    textinput.Model
	progressBar progress.Model
	spinner     spinner.Model
}

func initialModel() model {
	policyList := list.New([]list.Item{
		policyItem{title: "报告冲突并跳过", desc: "目标文件已存在时报告错误，保留两个文件", policy: organizer.CollisionFail},
		policyItem{title: "自动重命名", desc: "内容相同时视为重复跳过，否则重命名后移动", policy: organizer.CollisionRename},
	}, list.NewDefaultDelegate(), 0, 2)

	policyList.Title = "选择冲突处理方式"
	policyList.SetShowStatusBar(false)
	policyList.SetFilteringEnabled(false)
	policyList.Styles.Title = titleStyle
	policyList.Styles.TitleBar = titleStyle

	dirInput := textinput.New()
	dirInput.Placeholder = "请输入要整理的目录（按回车开始）"
	dirInput.Prompt = "> "
	dirInput.PromptStyle = focusedPromptStyle
	dirInput.TextStyle = textStyle

	progressBar := progress.New(progress.WithDefaultGradient())
	progressBar.PercentageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Width(4)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		FPS:    time.Second / 10,
	}
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := model{
		state:       StateConfig,
		focus:       FocusPolicy,
		policy:      organizer.CollisionFail,
		policyList:  policyList,
		dirInput:    dirInput,
		progressBar: progressBar,
		spinner:     s,
	}

	if cfg != nil && cfg.Collision != "" {
		m.policy = cfg.Collision
	}

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

type policyItem struct {
	title  string
	desc   string
	policy organizer.CollisionPolicy
}

func (p policyItem) Title() string       { return p.title }
func (p policyItem) Description() string { return p.desc }
func (p policyItem) FilterValue() string { return p.title }
