package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/player"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GeneratingView ViewState = iota
	PlayerView
	EmptyView
	ExhaustedView
	ErrorView
)

// PlaylistService is the aggregator boundary the TUI depends on.
// Implemented by [client.Client].
type PlaylistService interface {
	GeneratePlaylist(ctx context.Context, participants []models.Participant) ([]string, error)
}

// Model represents the playback TUI state.
type Model struct {
	ctx          context.Context
	view         ViewState
	service      PlaylistService
	controller   *player.Controller
	plyr         player.Player
	participants []models.Participant
	width        int
	height       int
	trackList    list.Model
	err          error
	help         help.Model
	keys         keyMap
}

// trackItem wraps one playlist entry to implement list.Item.
type trackItem struct {
	id string
}

func (i trackItem) FilterValue() string { return i.id }
func (i trackItem) Title() string       { return i.id }
func (i trackItem) Description() string {
	return "youtube.com/watch?v=" + i.id
}

type playlistGeneratedMsg struct {
	ids []string
	err error
}

// NewModel creates a playback TUI for the given participants.
func NewModel(ctx context.Context, service PlaylistService, controller *player.Controller, p player.Player, participants []models.Participant) *Model {
	return &Model{
		ctx:          ctx,
		view:         GeneratingView,
		service:      service,
		controller:   controller,
		plyr:         p,
		participants: participants,
		help:         help.New(),
		keys:         newKeyMap(),
	}
}

// Init kicks off playlist generation.
func (m *Model) Init() tea.Cmd {
	return m.generate()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.view == PlayerView {
			m.trackList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PlayerView:
			return m.handlePlayerKeys(msg)
		case EmptyView, ExhaustedView, ErrorView:
			return m.handleTerminalKeys(msg)
		case GeneratingView:
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		}
		return m, nil

	case playlistGeneratedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = ErrorView
			return m, nil
		}
		if len(msg.ids) == 0 {
			m.view = EmptyView
			return m, nil
		}

		m.controller.Load(msg.ids)
		m.controller.Attach(m.plyr)

		m.trackList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
		m.trackList.Title = fmt.Sprintf("Group playlist (%d candidates)", len(msg.ids))
		m.trackList.SetSize(m.width-4, m.height-10)
		m.syncList()
		m.view = PlayerView
		return m, nil
	}

	if m.view == PlayerView {
		var cmd tea.Cmd
		m.trackList, cmd = m.trackList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case GeneratingView:
		return styles.title.Render("Generating your group playlist…") + "\n" +
			styles.help.Render("querying the provider for every participant and genre")
	case PlayerView:
		return m.renderPlayer()
	case EmptyView:
		return m.renderTerminal(styles.warn.Render(
			"No videos matched the selected preferences. Try broader genres."))
	case ExhaustedView:
		return m.renderTerminal(styles.err.Render(
			"Every video in the generated list is blocked or unplayable."))
	case ErrorView:
		return m.renderTerminal(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
	default:
		return ""
	}
}

func (m *Model) handlePlayerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "enter":
		if err := m.controller.JumpTo(m.trackList.Index()); err == nil {
			m.syncList()
		}
		return m, nil

	case "n":
		m.controller.Next()
		m.syncList()
		return m, nil

	case "b":
		m.controller.Previous()
		m.syncList()
		return m, nil

	case " ":
		m.controller.TogglePlayPause()
		return m, nil

	case "x":
		current, ok := m.controller.Current()
		if !ok {
			return m, nil
		}
		if err := m.controller.OnMediaError(current); errors.Is(err, shared.ErrExhausted) {
			m.view = ExhaustedView
			return m, nil
		}
		m.syncList()
		return m, nil
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleTerminalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.err = nil
		m.view = GeneratingView
		return m, m.generate()
	}
	return m, nil
}

// syncList mirrors the controller's playlist and cursor into the list view.
func (m *Model) syncList() {
	ids := m.controller.Playlist()
	items := make([]list.Item, len(ids))
	for i, id := range ids {
		items[i] = trackItem{id: id}
	}
	m.trackList.SetItems(items)
	if cursor := m.controller.Cursor(); cursor < len(items) {
		m.trackList.Select(cursor)
	}
}

func (m *Model) generate() tea.Cmd {
	return func() tea.Msg {
		ids, err := m.service.GeneratePlaylist(m.ctx, m.participants)
		return playlistGeneratedMsg{ids: ids, err: err}
	}
}

func (m *Model) renderPlayer() string {
	now := "nothing playing"
	if current, ok := m.controller.Current(); ok {
		now = fmt.Sprintf("%s  [%s]", current, m.plyr.State())
	}

	header := styles.title.Render("Now playing: "+now) + "\n"
	return fmt.Sprintf("%s%s\n\n%s", header, m.trackList.View(),
		m.help.FullHelpView(m.keys.FullHelp()))
}

func (m *Model) renderTerminal(message string) string {
	hint := styles.help.Render("r regenerate • q quit")
	return fmt.Sprintf("%s\n\n%s", message, hint)
}
