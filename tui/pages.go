package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"echofeed/app"
	"echofeed/models"
)

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	return in
}

func (m *Model) openLogin() {
	email := newInput("Email")
	email.Focus()
	password := newInput("Password")
	password.EchoMode = textinput.EchoPassword
	m.inputs = []textinput.Model{email, password}
	m.focus = 0
	m.state.NavigateTo(app.PageLogin, nil)
}

func (m *Model) openRegister() {
	name := newInput("Display name")
	name.Focus()
	email := newInput("Email")
	password := newInput("Password")
	password.EchoMode = textinput.EchoPassword
	m.inputs = []textinput.Model{name, email, password}
	m.focus = 0
	m.state.NavigateTo(app.PageRegister, nil)
}

func (m *Model) openEditProfile(user models.AuthUser) {
	name := newInput("Display name")
	name.SetValue(user.DisplayName)
	name.Focus()
	avatar := newInput("Avatar URL")
	avatar.SetValue(user.AvatarURL)
	m.inputs = []textinput.Model{name, avatar}
	m.focus = 0
	m.state.NavigateTo(app.PageEditProfile, nil)
}

func (m *Model) openComposer(edit *models.PostWithAuthor) {
	title := newInput("Title")
	m.body.Reset()
	if edit != nil {
		title.SetValue(edit.Title)
		m.body.SetValue(edit.Content)
		m.editingPost = edit.ID
		m.state.NavigateTo(app.PageEditPost, nil)
	} else {
		m.editingPost = ""
		m.state.NavigateTo(app.PageCreatePost, nil)
	}
	title.Focus()
	m.inputs = []textinput.Model{title}
	m.focus = 0
	m.body.Blur()
}

func (m *Model) backHome() {
	m.inputs = nil
	m.commentFocused = false
	m.commentInput.Blur()
	m.state.NavigateTo(app.PageHome, nil)
}

// updateFeed handles the home page and the profile page, which share the
// post-list navigation.
func (m *Model) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.store.CurrentUser()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.posts)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.posts) {
			m.state.NavigateTo(app.PagePostDetail, &app.Params{PostID: m.posts[m.cursor].ID})
		}
	case "n":
		if current == nil {
			m.state.AddNotification("You must be logged in to create a post", models.NotificationWarning, true)
			return m, nil
		}
		m.openComposer(nil)
	case "i":
		m.openLogin()
	case "r":
		m.openRegister()
	case "o":
		if current != nil {
			m.store.Logout(m.ctx())
			m.state.AddNotification("Signed out", models.NotificationInfo, true)
		}
	case "p":
		if current != nil {
			m.state.NavigateTo(app.PageProfile, &app.Params{UserID: current.ID})
		}
	case "e":
		if m.state.CurrentPage() == app.PageProfile && current != nil {
			m.openEditProfile(*current)
		}
	case "h":
		if current != nil {
			m.tab = tabPosts
			m.state.NavigateTo(app.PageHistory, nil)
		}
	case "esc":
		if m.state.CurrentPage() == app.PageProfile {
			m.backHome()
		}
	}
	return m, nil
}

// updateForm handles the login, register, and edit-profile input stacks.
func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.backHome()
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + len(m.inputs)) % len(m.inputs))
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		m.submitForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *Model) submitForm() {
	switch m.state.CurrentPage() {
	case app.PageLogin:
		user, err := m.store.Login(m.ctx(), m.inputs[0].Value(), m.inputs[1].Value())
		if err != nil {
			m.notifyErr(err)
			return
		}
		m.state.AddNotification("Welcome back, "+user.DisplayName, models.NotificationSuccess, true)
		m.backHome()

	case app.PageRegister:
		user, err := m.store.Register(m.ctx(), m.inputs[0].Value(), m.inputs[1].Value(), m.inputs[2].Value(), "")
		if err != nil {
			m.notifyErr(err)
			return
		}
		m.state.AddNotification("Welcome, "+user.DisplayName, models.NotificationSuccess, true)
		m.backHome()

	case app.PageEditProfile:
		current := m.store.CurrentUser()
		if current == nil {
			m.backHome()
			return
		}
		if _, err := m.store.UpdateProfile(m.ctx(), current.ID, m.inputs[0].Value(), m.inputs[1].Value()); err != nil {
			m.notifyErr(err)
			return
		}
		m.state.AddNotification("Profile updated", models.NotificationSuccess, true)
		m.state.NavigateTo(app.PageProfile, &app.Params{UserID: current.ID})
	}
}

// updateComposer handles the create-post and edit-post pages: a title input
// plus a body textarea.
func (m *Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.backHome()
		return m, nil
	case "tab":
		if m.body.Focused() {
			m.body.Blur()
			m.setFocus(0)
		} else {
			m.inputs[0].Blur()
			m.body.Focus()
		}
		return m, nil
	case "ctrl+s":
		m.submitComposer()
		return m, nil
	}

	if m.body.Focused() {
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.inputs[0], cmd = m.inputs[0].Update(msg)
	return m, cmd
}

func (m *Model) submitComposer() {
	title := m.inputs[0].Value()
	content := m.body.Value()

	if m.editingPost != "" {
		if _, err := m.store.UpdatePost(m.ctx(), m.editingPost, title, content, ""); err != nil {
			m.notifyErr(err)
			return
		}
		m.state.AddNotification("Post updated", models.NotificationSuccess, true)
		m.state.NavigateTo(app.PagePostDetail, &app.Params{PostID: m.editingPost})
		m.editingPost = ""
		return
	}

	current := m.store.CurrentUser()
	if current == nil {
		m.state.AddNotification("You must be logged in to create a post", models.NotificationWarning, true)
		return
	}
	post, err := m.store.CreatePost(m.ctx(), title, content, "", current.ID)
	if err != nil {
		m.notifyErr(err)
		return
	}
	m.state.AddNotification("Post published", models.NotificationSuccess, true)
	m.state.NavigateTo(app.PagePostDetail, &app.Params{PostID: post.ID})
}

// updateDetail handles the post-detail page: comment thread, like toggle,
// and author-only edit/delete.
func (m *Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentFocused {
		switch msg.String() {
		case "esc":
			m.commentFocused = false
			m.commentInput.Blur()
			return m, nil
		case "enter":
			m.submitComment()
			return m, nil
		}
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	current := m.store.CurrentUser()
	postID := m.state.SelectedPost()

	switch msg.String() {
	case "esc", "q":
		m.backHome()
	case "c":
		if current == nil {
			m.state.AddNotification("You must be logged in to comment", models.NotificationWarning, true)
			return m, nil
		}
		m.commentFocused = true
		m.commentInput.Focus()
	case "l":
		if current == nil {
			m.state.AddNotification("You must be logged in to like posts", models.NotificationWarning, true)
			return m, nil
		}
		post, err := m.store.GetPost(postID)
		if err != nil {
			m.notifyErr(err)
			return m, nil
		}
		if post.LikedBy(current.ID) {
			err = m.store.UnlikePost(m.ctx(), postID, current.ID)
		} else {
			err = m.store.LikePost(m.ctx(), postID, current.ID)
		}
		if err != nil {
			m.notifyErr(err)
		}
	case "e":
		post, err := m.store.GetPost(postID)
		if err != nil {
			m.notifyErr(err)
			return m, nil
		}
		if current == nil || post.AuthorID != current.ID {
			m.state.AddNotification("You can only edit your own posts", models.NotificationWarning, true)
			return m, nil
		}
		m.openComposer(&post)
	case "d":
		if err := m.store.DeletePost(m.ctx(), postID); err != nil {
			m.notifyErr(err)
			return m, nil
		}
		m.state.AddNotification("Post deleted", models.NotificationInfo, true)
		m.backHome()
	}
	return m, nil
}

func (m *Model) submitComment() {
	current := m.store.CurrentUser()
	if current == nil {
		m.state.AddNotification("You must be logged in to comment", models.NotificationWarning, true)
		return
	}
	content := m.commentInput.Value()
	if content == "" {
		return
	}
	if _, err := m.store.AddComment(m.ctx(), m.state.SelectedPost(), content, current.ID); err != nil {
		m.notifyErr(err)
		return
	}
	m.commentInput.Reset()
	m.commentFocused = false
	m.commentInput.Blur()
}

// updateHistory switches between the three activity tabs.
func (m *Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.backHome()
	case "left", "shift+tab":
		if m.tab > tabPosts {
			m.tab--
		}
	case "right", "tab":
		if m.tab < tabLikes {
			m.tab++
		}
	case "1":
		m.tab = tabPosts
	case "2":
		m.tab = tabComments
	case "3":
		m.tab = tabLikes
	}
	return m, nil
}
