// Package models holds the CLI's local view of the signed-in session.
package models

// Session is persisted between runs so a restart does not force a new login.
type Session struct {
	Email        string
	AccessToken  string
	RefreshToken string
}

// Empty reports whether no tokens are held.
func (s Session) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}
