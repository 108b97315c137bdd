package tui

import (
	"fmt"
	"strings"
	"time"

	"echofeed/app"
	"echofeed/models"
)

const timeLayout = "Jan 2 15:04"

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	switch m.state.CurrentPage() {
	case app.PageLogin:
		b.WriteString(m.viewForm("Sign in", []string{"Email", "Password"}))
	case app.PageRegister:
		b.WriteString(m.viewForm("Create account", []string{"Display name", "Email", "Password"}))
	case app.PageEditProfile:
		b.WriteString(m.viewForm("Edit profile", []string{"Display name", "Avatar URL"}))
	case app.PageCreatePost:
		b.WriteString(m.viewComposer("New post"))
	case app.PageEditPost:
		b.WriteString(m.viewComposer("Edit post"))
	case app.PagePostDetail:
		b.WriteString(m.viewDetail())
	case app.PageProfile:
		b.WriteString(m.viewProfile())
	case app.PageHistory:
		b.WriteString(m.viewHistory())
	default:
		b.WriteString(m.viewFeed())
	}

	if notes := m.viewNotifications(); notes != "" {
		b.WriteString("\n")
		b.WriteString(notes)
	}
	b.WriteString("\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m *Model) viewHeader() string {
	title := m.styles.Title.Render("echofeed")
	who := "signed out"
	if current := m.store.CurrentUser(); current != nil {
		who = current.DisplayName
	}
	return title + m.styles.Meta.Render("  "+who)
}

func (m *Model) viewFeed() string {
	if len(m.posts) == 0 {
		return m.styles.Meta.Render("  No posts yet. Press n to write the first one.")
	}
	var b strings.Builder
	for i, p := range m.posts {
		line := fmt.Sprintf("%s  %s", p.Title, m.styles.Meta.Render(
			fmt.Sprintf("by %s · %s · %d likes · %d comments",
				p.Author.DisplayName, p.CreatedAt.Format(timeLayout), len(p.Likes), p.CommentCount)))
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewDetail() string {
	post, err := m.store.GetPost(m.state.SelectedPost())
	if err != nil {
		return m.styles.Danger.Render("  " + err.Error())
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("  " + post.Title))
	b.WriteString("\n")
	meta := fmt.Sprintf("by %s · %s · %d likes", post.Author.DisplayName, post.CreatedAt.Format(timeLayout), len(post.Likes))
	if post.UpdatedAt != nil {
		meta += " · edited " + post.UpdatedAt.Format(timeLayout)
	}
	b.WriteString(m.styles.Meta.Render("  " + meta))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Body.Render(post.Content))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("  Comments (%d)", len(m.comments))))
	b.WriteString("\n")
	for _, c := range m.comments {
		b.WriteString(m.styles.Item.Render(fmt.Sprintf("%s  %s", c.Author.DisplayName, m.styles.Meta.Render(c.CreatedAt.Format(timeLayout)))))
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render("  " + c.Content))
		b.WriteString("\n")
	}
	if m.commentFocused {
		b.WriteString("\n  ")
		b.WriteString(m.commentInput.View())
	}
	return b.String()
}

func (m *Model) viewProfile() string {
	user := m.store.AuthUserByID(m.state.SelectedProfile())

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("  " + user.DisplayName))
	b.WriteString("\n")
	b.WriteString(m.styles.Meta.Render(fmt.Sprintf("  %s · joined %s", user.Email, user.CreatedAt.Format("Jan 2006"))))
	b.WriteString("\n\n")
	b.WriteString(m.viewFeed())
	return b.String()
}

func (m *Model) viewForm(title string, labels []string) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("  " + title))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString("  " + m.styles.InputLabel.Render(label))
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewComposer(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("  " + title))
	b.WriteString("\n\n  ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n\n")
	b.WriteString(m.body.View())
	return b.String()
}

func (m *Model) viewHistory() string {
	current := m.store.CurrentUser()
	if current == nil {
		return m.styles.Meta.Render("  Sign in to see your history.")
	}

	names := []string{"Posts", "Comments", "Likes"}
	var tabs []string
	for i, name := range names {
		if historyTab(i) == m.tab {
			tabs = append(tabs, m.styles.Selected.Render("["+name+"]"))
		} else {
			tabs = append(tabs, m.styles.Meta.Render(" "+name+" "))
		}
	}

	var b strings.Builder
	b.WriteString("  " + strings.Join(tabs, " "))
	b.WriteString("\n\n")

	line := func(when time.Time, what string) {
		b.WriteString(m.styles.Item.Render(fmt.Sprintf("%s  %s", m.styles.Meta.Render(when.Format(timeLayout)), what)))
		b.WriteString("\n")
	}

	switch m.tab {
	case tabPosts:
		for _, a := range m.store.UserPostActivities(current.ID) {
			line(a.CreatedAt, fmt.Sprintf("%s post %q", a.Type, a.PostTitle))
		}
	case tabComments:
		for _, a := range m.store.UserCommentActivities(current.ID) {
			line(a.CreatedAt, fmt.Sprintf("%s comment on %q: %s", a.Type, a.PostTitle, a.CommentContent))
		}
	case tabLikes:
		for _, a := range m.store.UserLikeActivities(current.ID) {
			line(a.CreatedAt, fmt.Sprintf("%s %q by %s", a.Type, a.PostTitle, a.PostAuthor))
		}
	}
	return b.String()
}

func (m *Model) viewNotifications() string {
	notes := m.state.Notifications()
	if len(notes) == 0 {
		return ""
	}
	var b strings.Builder
	for _, n := range notes {
		var style = m.styles.Info
		switch n.Type {
		case models.NotificationSuccess:
			style = m.styles.Success
		case models.NotificationWarning:
			style = m.styles.Warning
		case models.NotificationDanger:
			style = m.styles.Danger
		}
		b.WriteString(style.Render("  • " + n.Message))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) viewHelp() string {
	var help string
	switch m.state.CurrentPage() {
	case app.PageLogin, app.PageRegister, app.PageEditProfile:
		help = "tab: next field · enter: submit · esc: back"
	case app.PageCreatePost, app.PageEditPost:
		help = "tab: title/body · ctrl+s: publish · esc: cancel"
	case app.PagePostDetail:
		help = "c: comment · l: like/unlike · e: edit · d: delete · esc: back"
	case app.PageProfile:
		help = "e: edit profile · esc: back"
	case app.PageHistory:
		help = "tab/1/2/3: switch log · esc: back"
	default:
		help = "↑/↓: select · enter: open · n: new post · i: sign in · r: register · p: profile · h: history · o: sign out · q: quit"
	}
	return m.styles.Help.Render("  " + help)
}
