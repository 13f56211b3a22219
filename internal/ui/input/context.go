package input

import "termfolio/internal/session"

// SessionContext exposes a mounted session to the mode handlers
type SessionContext struct {
	Session *session.Session
}

func (c SessionContext) PageName() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.Page().Name()
}

func (c SessionContext) CurrentOption() string {
	if c.Session == nil {
		return ""
	}
	return c.Session.Current()
}

func (c SessionContext) Options() []string {
	if c.Session == nil {
		return nil
	}
	return c.Session.Page().Options()
}
