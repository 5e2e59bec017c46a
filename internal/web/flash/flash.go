// Package flash queues one-time notifications in the cookie session. A
// message is stored on one request, rendered on the next page load, and
// discarded.
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	CategorySuccess = "success"
	CategoryError   = "error"
	CategoryInfo    = "info"
)

type Message struct {
	Category string
	Text     string
}

func init() {
	// The cookie store serializes session values with gob.
	gob.Register(Message{})
}

// Add queues a message and saves the session, persisting any other session
// changes the handler made first.
func Add(c *gin.Context, category, text string) {
	session := sessions.Default(c)
	session.AddFlash(Message{Category: category, Text: text})
	_ = session.Save()
}

// Pop returns all queued messages and clears them from the session.
func Pop(c *gin.Context) []Message {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removed them from the session; persist the removal so they
	// render exactly once.
	_ = session.Save()

	messages := make([]Message, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Message); ok {
			messages = append(messages, m)
		}
	}
	return messages
}
