package repl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/fcall/fc"
	"github.com/ardnew/fcall/log"
)

const prompt = "➜ "

func helpMessage() string {
	return `
: Commands (prefix with ':'):

  :help             Print this cruft
  :format [f]       Show or set output format (json, yaml, text)
  :indent [n]       Show or set output indent width
  :clear            Clear screen
  :quit             Exit REPL

Usage:
  Type one or more tool call expressions to parse them
  Commands match on unambiguous prefixes (:f, :q, ...)
  Use Up/Down arrows for history navigation
  Press Ctrl+C or Ctrl+D to exit
`
}

// commands lists the control command names matched against user input.
var commands = []string{"help", "format", "indent", "clear", "quit"}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// formatCommand formats the input echo line with prompt and input styled.
func formatCommand(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// config holds the adjustable output settings of a session.
type config struct {
	format string
	indent int
}

// Option applies a configuration option to a session.
type Option func(config) config

// WithFormat returns an option setting the output format.
func WithFormat(format string) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithIndent returns an option setting the output indent width.
func WithIndent(indent int) Option {
	return func(c config) config {
		c.indent = indent

		return c
	}
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	logger     log.Logger
	history    *History
	historyIdx int
	cfg        config
	width      int
	quitting   bool
}

// Run starts an interactive session reading expressions from the terminal.
// History is persisted to historyPath across sessions.
func Run(
	ctx context.Context,
	historyPath string,
	logger log.Logger,
	opts ...Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	cfg := config{format: "json"}
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("history", historyPath),
		slog.String("format", cfg.format),
	)

	history := NewHistory(historyPath)
	if err := history.Load(); err != nil {
		fmt.Printf("Warning: could not load history: %v\n", err)
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, history, logger, cfg)

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	history *History,
	logger log.Logger,
	cfg config,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		cfg:        cfg,
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		if m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history.At(m.historyIdx))
			m.input.CursorEnd()
		}

		return m, nil

	case tea.KeyDown:
		if m.historyIdx < m.history.Len() {
			m.historyIdx++
			if m.historyIdx == m.history.Len() {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.history.At(m.historyIdx))
				m.input.CursorEnd()
			}
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if line == "" {
		return m, nil
	}

	_, _ = m.history.Write(line)
	m.historyIdx = m.history.Len()

	echo := formatCommand(line)

	if cmd, ok := strings.CutPrefix(line, ":"); ok {
		return m.control(echo, cmd)
	}

	return m, tea.Sequence(tea.Println(echo), m.parse(line))
}

// control dispatches a command line by fuzzy-matching its first word
// against the known command names.
func (m model) control(echo, line string) (tea.Model, tea.Cmd) {
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")

	matches := fuzzy.Find(name, commands)
	if len(matches) == 0 {
		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(errorStyle.Render(
				ErrUnknownCommand.Error()+": "+name,
			)),
		)
	}

	switch commands[matches[0].Index] {
	case "help":
		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(hintStyle.Render(helpMessage())),
		)

	case "format":
		return m.setFormat(echo, strings.TrimSpace(args))

	case "indent":
		return m.setIndent(echo, strings.TrimSpace(args))

	case "clear":
		return m, tea.ClearScreen

	case "quit":
		m.quitting = true

		return m, tea.Quit
	}

	return m, tea.Println(echo)
}

func (m model) setFormat(echo, arg string) (tea.Model, tea.Cmd) {
	if arg == "" {
		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(hintStyle.Render("format: "+m.cfg.format)),
		)
	}

	switch arg {
	case "json", "yaml", "text":
		m.cfg.format = arg

		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(resultStyle.Render("format: "+arg)),
		)
	}

	return m, tea.Sequence(
		tea.Println(echo),
		tea.Println(errorStyle.Render(ErrUnknownFormat.Error()+": "+arg)),
	)
}

func (m model) setIndent(echo, arg string) (tea.Model, tea.Cmd) {
	if arg == "" {
		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(hintStyle.Render(
				"indent: "+strconv.Itoa(m.cfg.indent),
			)),
		)
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return m, tea.Sequence(
			tea.Println(echo),
			tea.Println(errorStyle.Render("invalid indent: "+arg)),
		)
	}

	m.cfg.indent = n

	return m, tea.Sequence(
		tea.Println(echo),
		tea.Println(resultStyle.Render("indent: "+arg)),
	)
}

// parse parses the expression text and renders the outcome.
func (m model) parse(line string) tea.Cmd {
	ctx := m.ctxFunc()

	calls, err := fc.ParseString(ctx, line, fc.WithLogger(m.logger))
	if err != nil {
		m.logger.DebugContext(ctx, "repl parse failed",
			slog.Any("error", err),
		)

		return tea.Println(errorStyle.Render(err.Error()))
	}

	var buf bytes.Buffer

	switch m.cfg.format {
	case "yaml":
		err = calls.FormatYAML(ctx, &buf, m.cfg.indent)
	case "text":
		err = calls.Format(ctx, &buf, m.cfg.indent)
	default:
		err = calls.FormatJSON(ctx, &buf, m.cfg.indent)
	}

	if err != nil {
		return tea.Println(errorStyle.Render(err.Error()))
	}

	return tea.Println(
		resultStyle.Render(strings.TrimRight(buf.String(), "\n")),
	)
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View()
}
