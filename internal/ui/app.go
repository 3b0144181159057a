package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/movie"
	"github.com/five82/marquee/internal/omdb"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/search"
	"github.com/five82/marquee/internal/state"
)

// focusTarget is a stop in the focus ring.
type focusTarget int

const (
	focusInput focusTarget = iota
	focusFind
	focusAdd
	focusCount
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Finder    omdb.Finder
	List      *state.List
	Config    *config.Config
	ThemeName string
	Layout    string
	PrefsPath string
}

// statusLine is the outcome shown in the header.
type statusLine struct {
	text   string
	failed bool
	at     time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	finder      omdb.Finder
	list        *state.List
	prefsPath   string
	timeout     time.Duration
	placeholder string

	// Search state
	form   search.Form
	input  textinput.Model
	spin   spinner.Model
	status statusLine

	// UI state
	keys     keyMap
	theme    Theme
	layout   string
	focus    focusTarget
	width    int
	height   int
	ready    bool
	showHelp bool

	// List panel
	listView viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	list := opts.List
	if list == nil {
		list = &state.List{}
	}

	timeout := DefaultLookupTimeout
	placeholder := movie.PlaceholderImageURL
	if opts.Config != nil {
		if opts.Config.RequestTimeout > 0 {
			timeout = opts.Config.RequestTimeout
		}
		if strings.TrimSpace(opts.Config.PlaceholderURL) != "" {
			placeholder = opts.Config.PlaceholderURL
		}
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	layout := opts.Layout
	if layout != prefs.LayoutStacked {
		layout = prefs.LayoutSplit
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ti := textinput.New()
	ti.Placeholder = search.InputPlaceholder
	ti.CharLimit = TitleInputLimit
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:         ctx,
		finder:      opts.Finder,
		list:        list,
		prefsPath:   prefsPath,
		timeout:     timeout,
		placeholder: placeholder,
		form:        search.NewForm(placeholder),
		input:       ti,
		spin:        sp,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(themeName),
		layout:      layout,
		focus:       focusInput,
		listView:    viewport.New(0, 0),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case lookupMsg:
		m.handleLookup(search.Result(msg))
		return m, nil

	case spinner.TickMsg:
		// Let the tick loop die once nothing is pending.
		if !m.form.State().IsLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any other key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.HelpAlt) && m.focus != focusInput:
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleLayout):
		if m.layout == prefs.LayoutSplit {
			m.layout = prefs.LayoutStacked
		} else {
			m.layout = prefs.LayoutSplit
		}
		m.resize()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		cmd := m.moveFocus(1)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		cmd := m.moveFocus(-1)
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		cmd := m.setFocus(focusInput)
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		m.addPreview()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.focus == focusAdd {
			m.addPreview()
			return m, nil
		}
		cmd := m.submit()
		return m, cmd

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		return m, cmd
	}

	if m.focus != focusInput {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.form.SetQuery(m.input.Value())
	}
	return m, cmd
}

// submit starts a lookup for the current query, if any.
func (m *Model) submit() tea.Cmd {
	wasLoading := m.form.State().IsLoading
	req, ok := m.form.Submit()
	if !ok {
		return nil
	}

	zerolog.Ctx(m.ctx).Debug().
		Str("request_id", req.ID.String()).
		Uint64("seq", req.Seq).
		Str("query", req.Query).
		Msg("lookup submitted")

	cmds := []tea.Cmd{lookupCmd(m.ctx, m.finder, req, m.timeout)}
	if !wasLoading {
		cmds = append(cmds, m.spin.Tick)
	}
	return tea.Batch(cmds...)
}

// handleLookup applies a settled lookup to the form and the status line.
func (m *Model) handleLookup(res search.Result) {
	if m.form.Superseded(res) {
		zerolog.Ctx(m.ctx).Debug().
			Str("request_id", res.Request.ID.String()).
			Uint64("seq", res.Request.Seq).
			Msg("older lookup settled after a newer one")
	}
	m.form.Settle(res)

	m.status = statusLine{at: time.Now()}
	if res.Err != nil {
		m.status.failed = true
		m.status.text = fmt.Sprintf("No match for %q", res.Request.Query)
	} else {
		m.status.text = fmt.Sprintf("Found %s in %s", res.Title.Title, humanizeDuration(res.Elapsed))
	}
	m.ensureFocus()
}

// addPreview appends the previewed movie to the list unless it is already
// there, then clears the query.
func (m *Model) addPreview() {
	preview := m.form.State().Preview
	if preview == nil {
		return
	}

	added := m.form.Add(m.list, func(mv movie.Movie) {
		m.list.Add(mv)
	})
	m.input.SetValue("")

	log := zerolog.Ctx(m.ctx).Info().Str("imdb_id", preview.ImdbID)
	m.status = statusLine{at: time.Now()}
	if added {
		log.Int("list_len", m.list.Len()).Msg("movie added")
		m.status.text = fmt.Sprintf("Added %s", preview.Title)
	} else {
		log.Msg("movie already listed")
		m.status.text = fmt.Sprintf("%s is already on the list", preview.Title)
	}

	m.refreshList()
	m.listView.GotoBottom()
	m.ensureFocus()
}

// focusable reports whether target can take focus right now.
func (m Model) focusable(target focusTarget) bool {
	switch target {
	case focusInput:
		return true
	case focusFind:
		return m.form.CanSubmit()
	case focusAdd:
		return m.form.State().Preview != nil
	default:
		return false
	}
}

// moveFocus walks the focus ring by step, skipping disabled controls.
func (m *Model) moveFocus(step int) tea.Cmd {
	next := m.focus
	for i := 0; i < int(focusCount); i++ {
		next = focusTarget((int(next) + step + int(focusCount)) % int(focusCount))
		if m.focusable(next) {
			break
		}
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(target focusTarget) tea.Cmd {
	m.focus = target
	if target == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// ensureFocus returns focus to the input when the focused control became
// disabled or hidden.
func (m *Model) ensureFocus() {
	if !m.focusable(m.focus) {
		_ = m.setFocus(focusInput)
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Layout: m.layout}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		zerolog.Ctx(m.ctx).Warn().Err(err).Msg("save prefs")
	}
}

// applyTheme restyles the bubbles components for the current theme.
func (m *Model) applyTheme() {
	m.input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	m.input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Faint))
	m.input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	m.spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	m.refreshList()
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())

	return b.String()
}

// Messages

type lookupMsg search.Result

// Commands

func lookupCmd(ctx context.Context, finder omdb.Finder, req search.Request, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		lookupCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return lookupMsg(search.Lookup(lookupCtx, finder, req))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	// A cancelled context (SIGINT/SIGTERM) is a normal shutdown.
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}
