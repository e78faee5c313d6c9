package testutil

import (
	tele "gopkg.in/telebot.v3"
)

// SentMessage is one call to FakeContext.Send
type SentMessage struct {
	What interface{}
	Opts []interface{}
}

// FakeContext implements the parts of tele.Context the handlers use.
// Calling anything else panics on the nil embedded interface.
type FakeContext struct {
	tele.Context

	User        *tele.User
	MessageText string
	SendErr     error

	Sent   []SentMessage
	values map[string]interface{}
}

// NewFakeContext creates a context for a text message from the user
func NewFakeContext(user *tele.User, text string) *FakeContext {
	return &FakeContext{
		User:        user,
		MessageText: text,
		values:      make(map[string]interface{}),
	}
}

func (c *FakeContext) Sender() *tele.User {
	return c.User
}

func (c *FakeContext) Text() string {
	return c.MessageText
}

func (c *FakeContext) Send(what interface{}, opts ...interface{}) error {
	c.Sent = append(c.Sent, SentMessage{What: what, Opts: opts})
	return c.SendErr
}

func (c *FakeContext) Set(key string, val interface{}) {
	c.values[key] = val
}

func (c *FakeContext) Get(key string) interface{} {
	return c.values[key]
}
