// Package tui implements the pal chat view: a scrollback viewport over the
// persisted transcript with a single-line input. Replies come from the
// assistant engine; navigation side effects surface as a banner.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/pal/internal/assistant"
	"github.com/colonyops/pal/internal/core/chat"
	"github.com/colonyops/pal/internal/core/config"
	"github.com/colonyops/pal/internal/core/styles"
)

// historyLoadLimit caps how much transcript is rendered on startup.
const historyLoadLimit = 50

// Deps are the collaborators the chat view needs.
type Deps struct {
	Engine     *assistant.Engine
	Transcript chat.Store
	Config     *config.Config
	Log        zerolog.Logger
}

type replyMsg struct {
	reply assistant.Reply
}

type navMsg assistant.Destination

type historyMsg struct {
	messages []chat.Message
}

// navRelay forwards engine navigation callbacks into the bubbletea loop.
// Navigate may be called from a tea.Cmd goroutine, so it never blocks.
type navRelay struct {
	ch chan assistant.Destination
}

func (n *navRelay) Navigate(dest assistant.Destination) {
	select {
	case n.ch <- dest:
	default:
	}
}

// Model is the chat view.
type Model struct {
	deps Deps
	nav  *navRelay

	viewport viewport.Model
	input    textarea.Model
	spin     spinner.Model

	lines    []string
	thinking bool
	banner   string
	width    int
	height   int
	ready    bool
}

// New creates the chat view and attaches it as the engine's navigator.
func New(deps Deps) Model {
	nav := &navRelay{ch: make(chan assistant.Destination, 1)}
	deps.Engine.SetNavigator(nav)

	input := textarea.New()
	input.Placeholder = "Ask me anything..."
	input.Prompt = "> "
	input.CharLimit = 500
	input.SetHeight(1)
	input.ShowLineNumbers = false
	input.Focus()

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.ThinkingStyle),
	)

	return Model{
		deps:  deps,
		nav:   nav,
		input: input,
		spin:  spin,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.loadHistory(), m.waitForNav())
}

func (m Model) loadHistory() tea.Cmd {
	return func() tea.Msg {
		messages, err := m.deps.Transcript.List(context.Background(), historyLoadLimit)
		if err != nil {
			m.deps.Log.Warn().Err(err).Msg("failed to load transcript")
			return historyMsg{}
		}
		return historyMsg{messages: messages}
	}
}

func (m Model) waitForNav() tea.Cmd {
	return func() tea.Msg {
		return navMsg(<-m.nav.ch)
	}
}

func (m Model) send(text string) tea.Cmd {
	delay := time.Duration(m.deps.Config.Assistant.ThinkingDelayMS) * time.Millisecond
	return func() tea.Msg {
		if delay > 0 {
			time.Sleep(delay)
		}
		return replyMsg{reply: m.deps.Engine.HandleUtterance(context.Background(), text)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chromeHeight := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chromeHeight
		}
		m.input.SetWidth(msg.Width - 4)
		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.thinking {
				return m, nil
			}
			m.input.Reset()
			m.banner = ""
			m.thinking = true
			m.appendUserLine(text)
			m.refreshViewport()
			return m, tea.Batch(m.send(text), m.spin.Tick)
		}

	case historyMsg:
		for _, message := range msg.messages {
			if message.Role == chat.RoleUser {
				m.appendUserLine(message.Content)
			} else {
				m.appendAssistantLine(message.Content)
			}
		}
		m.refreshViewport()

	case replyMsg:
		m.thinking = false
		m.appendAssistantLine(msg.reply.Text)
		m.refreshViewport()

	case navMsg:
		m.banner = styles.NavBannerStyle.Render(navLabel(assistant.Destination(msg)))
		cmds = append(cmds, m.waitForNav())

	case spinner.TickMsg:
		if m.thinking {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) appendUserLine(text string) {
	m.lines = append(m.lines, styles.UserLabelStyle.Render("You")+" "+text, "")
}

func (m *Model) appendAssistantLine(text string) {
	m.lines = append(m.lines, styles.AssistantLabelStyle.Render("pal")+" "+text, "")
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m Model) headerView() string {
	title := styles.CommandHeaderStyle.Render(styles.IconChat + " pal")
	divider := styles.DividerStyle.Render(strings.Repeat("─", max(0, m.width)))
	return title + "\n" + divider
}

func (m Model) footerView() string {
	var b strings.Builder

	if m.banner != "" {
		b.WriteString(m.banner)
		b.WriteString("\n")
	}
	if m.thinking {
		b.WriteString(styles.ThinkingStyle.Render(m.spin.View() + "thinking..."))
		b.WriteString("\n")
	}

	b.WriteString(styles.InputBorderStyle.Width(max(0, m.width-2)).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter send · esc quit"))
	return b.String()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

// navLabel renders a destination as a banner label with its section icon.
func navLabel(dest assistant.Destination) string {
	icon := styles.IconChat
	switch dest {
	case assistant.DestCalendar:
		icon = styles.IconCalendar
	case assistant.DestTasks:
		icon = styles.IconTask
	case assistant.DestNotes:
		icon = styles.IconNote
	case assistant.DestFinance, assistant.DestSubscriptions:
		icon = styles.IconMoney
	case assistant.DestHealth:
		icon = styles.IconHealth
	case assistant.DestStocks:
		icon = styles.IconStocks
	case assistant.DestHome, assistant.DestHouse:
		icon = styles.IconHouse
	case assistant.DestSettings:
		icon = styles.IconGear
	}
	return fmt.Sprintf("%s opening %s", icon, string(dest))
}
