// Package tui renders the feed as an interactive terminal program. The
// current page lives in the shared app state; this model translates key
// presses into domain operations and re-renders on store change events.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"echofeed/app"
	"echofeed/models"
	"echofeed/store"
)

// refreshMsg asks the model to reload its view data. Sent on store mutation
// events and app-state changes.
type refreshMsg struct{}

// historyTab selects which activity log the history page shows.
type historyTab int

const (
	tabPosts historyTab = iota
	tabComments
	tabLikes
)

// Model is the bubbletea model for the whole program.
type Model struct {
	store  *store.Store
	state  *app.State
	logger *zap.Logger
	styles Styles

	width  int
	height int

	// feed and detail
	posts    []models.PostWithAuthor
	comments []models.CommentWithAuthor
	cursor   int

	// forms; the slice layout depends on the page (login: email+password,
	// register: name+email+password, edit-profile: name+avatar)
	inputs []textinput.Model
	focus  int
	body   textarea.Model

	// post-detail comment entry
	commentInput   textinput.Model
	commentFocused bool

	// id of the post being edited on the edit-post page
	editingPost string

	tab historyTab
}

func New(st *store.Store, state *app.State, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	body := textarea.New()
	body.Placeholder = "Write something..."
	body.SetHeight(6)

	comment := textinput.New()
	comment.Placeholder = "Add a comment"
	comment.CharLimit = 500

	return &Model{
		store:        st,
		state:        state,
		logger:       logger,
		styles:       defaultStyles(),
		body:         body,
		commentInput: comment,
	}
}

// Run wires the model, the store's change events, and the app state into a
// bubbletea program and blocks until it exits.
func Run(st *store.Store, state *app.State, logger *zap.Logger) error {
	m := New(st, state, logger)
	m.reload()

	p := tea.NewProgram(m, tea.WithAltScreen())
	unsubscribe := st.Subscribe(func(store.Event) {
		p.Send(refreshMsg{})
	})
	defer unsubscribe()
	state.OnChange(func() {
		p.Send(refreshMsg{})
	})

	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// reload refreshes the data behind the current page.
func (m *Model) reload() {
	switch m.state.CurrentPage() {
	case app.PageHome:
		m.posts = m.store.ListPosts()
	case app.PagePostDetail:
		m.comments = m.store.ListComments(m.state.SelectedPost())
	case app.PageProfile:
		m.posts = m.store.ListPostsByAuthor(m.state.SelectedProfile())
	}
	if m.cursor >= len(m.posts) {
		m.cursor = max(0, len(m.posts)-1)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards non-key messages (blink ticks) to whichever inputs
// exist on the current page.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	cmds = append(cmds, cmd)
	m.commentInput, cmd = m.commentInput.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state.CurrentPage() {
	case app.PageLogin, app.PageRegister, app.PageEditProfile:
		return m.updateForm(msg)
	case app.PageCreatePost, app.PageEditPost:
		return m.updateComposer(msg)
	case app.PagePostDetail:
		return m.updateDetail(msg)
	case app.PageHistory:
		return m.updateHistory(msg)
	default:
		return m.updateFeed(msg)
	}
}

// notifyErr surfaces a domain-operation failure as a notification.
func (m *Model) notifyErr(err error) {
	m.state.AddNotification(err.Error(), models.NotificationDanger, true)
}

func (m *Model) ctx() context.Context {
	return context.Background()
}
