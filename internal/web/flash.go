package web

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "everlight_session"

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
)

type FlashMessage struct {
	Category string
	Message  string
}

func init() {
	gob.Register(FlashMessage{})
}

// Flash stores one-shot messages in a signed cookie session, keyed by
// the configured secret. A message added during one request is shown
// on the next page load and then discarded.
type Flash struct {
	store *sessions.CookieStore
}

func NewFlash(secret string) *Flash {
	return &Flash{store: sessions.NewCookieStore([]byte(secret))}
}

func (f *Flash) Add(w http.ResponseWriter, r *http.Request, category, message string) {
	session, _ := f.store.Get(r, sessionName)
	session.AddFlash(FlashMessage{Category: category, Message: message})
	// Losing a flash is cosmetic; the booking outcome is already decided.
	_ = session.Save(r, w)
}

func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []FlashMessage {
	session, _ := f.store.Get(r, sessionName)

	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save(r, w)
	}

	messages := make([]FlashMessage, 0, len(raw))
	for _, v := range raw {
		if msg, ok := v.(FlashMessage); ok {
			messages = append(messages, msg)
		}
	}

	return messages
}
