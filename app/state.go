// Package app holds transient UI state: the current page, the selected post
// and profile, and the notification queue. None of it is persisted.
package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"echofeed/models"
)

// Page enumerates the screens the UI can show.
type Page string

const (
	PageHome        Page = "home"
	PageLogin       Page = "login"
	PageRegister    Page = "register"
	PagePostDetail  Page = "post-detail"
	PageProfile     Page = "profile"
	PageEditProfile Page = "edit-profile"
	PageCreatePost  Page = "create-post"
	PageEditPost    Page = "edit-post"
	PageHistory     Page = "history"
)

// Params carries optional navigation targets.
type Params struct {
	PostID string
	UserID string
}

// State is the application's transient UI state. Safe for use from the UI
// goroutine and notification timers.
type State struct {
	mu              sync.Mutex
	currentPage     Page
	selectedPost    string
	selectedProfile string

	notifications []models.Notification
	timers        map[string]*time.Timer

	onChange      func()
	autoHideDelay time.Duration
	logger        *zap.Logger
	newID         func() string
}

// NewState starts on the home page with an empty notification queue.
func NewState(logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		currentPage:   PageHome,
		timers:        make(map[string]*time.Timer),
		autoHideDelay: 5 * time.Second,
		logger:        logger,
		newID:         uuid.NewString,
	}
}

// OnChange registers a callback invoked after every state change. Used by
// the UI to schedule a re-render; runs outside the state lock.
func (s *State) OnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

func (s *State) changed() {
	s.mu.Lock()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// NavigateTo sets the current page and, when params are given, the selected
// post and profile ids used by the page renderers.
func (s *State) NavigateTo(page Page, params *Params) {
	s.mu.Lock()
	s.currentPage = page
	if params != nil {
		if params.PostID != "" {
			s.selectedPost = params.PostID
		}
		if params.UserID != "" {
			s.selectedProfile = params.UserID
		}
	}
	s.mu.Unlock()
	s.changed()
}

func (s *State) CurrentPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *State) SelectedPost() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedPost
}

func (s *State) SelectedProfile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedProfile
}
