package store

import (
	"context"

	"echofeed/models"
)

// CurrentUser returns a copy of the signed-in user's projection, or nil when
// nobody is signed in.
func (s *Store) CurrentUser() *models.AuthUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// GetUserByID returns the user with the given id, or the unknown-user
// placeholder when the id does not resolve.
func (s *Store) GetUserByID(id string) models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userByID(id)
}

// AuthUserByID is GetUserByID projected without the password.
func (s *Store) AuthUserByID(id string) models.AuthUser {
	return s.GetUserByID(id).Auth()
}

// userByID resolves id against the users collection, substituting the
// placeholder on a miss. Called with s.mu held.
func (s *Store) userByID(id string) models.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return models.UnknownUser()
}

// resolveAuthor returns the password-stripped author for an authorId,
// placeholder included. Called with s.mu held.
func (s *Store) resolveAuthor(authorID string) models.AuthUser {
	return s.userByID(authorID).Auth()
}

// Register creates an account and signs it in. The email collision check is
// an exact, case-sensitive match.
func (s *Store) Register(ctx context.Context, displayName, email, password, avatarURL string) (models.AuthUser, error) {
	s.mu.Lock()
	for _, u := range s.users {
		if u.Email == email {
			s.mu.Unlock()
			return models.AuthUser{}, models.NewDuplicateEmailError()
		}
	}

	if avatarURL == "" {
		avatarURL = models.DefaultAvatarURL(displayName)
	}
	user := models.User{
		ID:          s.newID(),
		DisplayName: displayName,
		Email:       email,
		Password:    password,
		AvatarURL:   avatarURL,
		CreatedAt:   s.now(),
	}
	s.users = append(s.users, user)

	auth := user.Auth()
	s.current = &auth
	s.saveSession(ctx)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "user", Action: "create", ID: user.ID})
	s.notify(Event{Entity: "session", Action: "login", ID: user.ID})
	return auth, nil
}

// Login signs in on an exact email+password match.
func (s *Store) Login(ctx context.Context, email, password string) (models.AuthUser, error) {
	s.mu.Lock()
	var match *models.User
	for i := range s.users {
		if s.users[i].Email == email && s.users[i].Password == password {
			match = &s.users[i]
			break
		}
	}
	if match == nil {
		s.mu.Unlock()
		return models.AuthUser{}, models.NewInvalidCredentialsError()
	}

	auth := match.Auth()
	s.current = &auth
	s.saveSession(ctx)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "session", Action: "login", ID: auth.ID})
	return auth, nil
}

// Logout clears the session. Signing out while signed out is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	var id string
	if s.current != nil {
		id = s.current.ID
	}
	s.current = nil
	s.saveSession(ctx)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "session", Action: "logout", ID: id})
}

// UpdateProfile overwrites a user's display fields. When the edited user is
// the session user, the session projection is refreshed and re-persisted.
func (s *Store) UpdateProfile(ctx context.Context, userID, displayName, avatarURL string) (models.AuthUser, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.AuthUser{}, models.NewUserNotFoundError()
	}

	s.users[idx].DisplayName = displayName
	s.users[idx].AvatarURL = avatarURL

	auth := s.users[idx].Auth()
	if s.current != nil && s.current.ID == userID {
		s.current = &auth
		s.saveSession(ctx)
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "user", Action: "update", ID: userID})
	return auth, nil
}

// UpdatePassword overwrites a user's password after verifying the current
// one.
func (s *Store) UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.users {
		if s.users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return models.NewUserNotFoundError()
	}
	if s.users[idx].Password != currentPassword {
		s.mu.Unlock()
		return models.NewIncorrectPasswordError()
	}

	s.users[idx].Password = newPassword
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Event{Entity: "user", Action: "update", ID: userID})
	return nil
}
