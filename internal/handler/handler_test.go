package handler

import (
	"fmt"
	"strings"
	"testing"

	"wordcards/internal/domain"
	"wordcards/internal/service"
	"wordcards/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func newTestHandler(common ...domain.Word) *Handler {
	store := testutil.NewMemoryStore(common...)
	logger := testutil.NewTestLogger()
	engine := service.NewQuizEngine(
		service.NewUserService(store),
		service.NewWordService(store, logger),
		service.NewSelector(1),
		logger,
	)
	return NewHandler(nil, engine, logger)
}

func TestReplyMarkup(t *testing.T) {
	tests := []struct {
		name         string
		reply        domain.Reply
		expectNil    bool
		expectRemove bool
		expectRows   [][]string
	}{
		{
			name:      "keep keyboard",
			reply:     domain.Reply{Text: "hi"},
			expectNil: true,
		},
		{
			name:         "remove keyboard",
			reply:        domain.Reply{Text: "hi", RemoveKeyboard: true},
			expectRemove: true,
		},
		{
			name:       "two columns",
			reply:      domain.Reply{Buttons: []string{"a", "b", "c", "d", "e"}, Columns: 2},
			expectRows: [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:       "one column",
			reply:      domain.Reply{Buttons: []string{"cat", domain.BtnCancel}, Columns: 1},
			expectRows: [][]string{{"cat"}, {domain.BtnCancel}},
		},
		{
			name:       "default columns",
			reply:      domain.Reply{Buttons: []string{"a", "b", "c"}},
			expectRows: [][]string{{"a", "b"}, {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup := replyMarkup(tt.reply)

			if tt.expectNil {
				assert.Nil(t, markup)
				return
			}
			require.NotNil(t, markup)
			assert.Equal(t, tt.expectRemove, markup.RemoveKeyboard)

			var rows [][]string
			for _, row := range markup.ReplyKeyboard {
				var labels []string
				for _, btn := range row {
					labels = append(labels, btn.Text)
				}
				rows = append(rows, labels)
			}
			assert.Equal(t, tt.expectRows, rows)
		})
	}
}

func TestHandler_StartCommand(t *testing.T) {
	h := newTestHandler(testutil.NewTestWords("red", "красный", "blue", "синий")...)
	c := testutil.NewFakeContext(&tele.User{ID: 1, Username: "alice"}, "/start ref123")

	err := h.handleCommand("/start")(c)

	require.NoError(t, err)
	require.Len(t, c.Sent, 1)
	text, ok := c.Sent[0].What.(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(text, "Привет!"))
	require.Len(t, c.Sent[0].Opts, 1)
	markup, ok := c.Sent[0].Opts[0].(*tele.ReplyMarkup)
	require.True(t, ok)
	assert.Len(t, markup.ReplyKeyboard, 3)
}

func TestHandler_TextKeepsKeyboard(t *testing.T) {
	h := newTestHandler(testutil.NewTestWords("red", "красный")...)
	user := &tele.User{ID: 1}

	require.NoError(t, h.handleText(testutil.NewFakeContext(user, "/start")))

	// nothing to delete: the existing keyboard stays
	c := testutil.NewFakeContext(user, domain.BtnDeleteWord)
	require.NoError(t, h.handleText(c))

	require.Len(t, c.Sent, 1)
	assert.Empty(t, c.Sent[0].Opts)
}

func TestHandler_NoSender(t *testing.T) {
	h := newTestHandler()
	c := testutil.NewFakeContext(nil, "hello")

	assert.NoError(t, h.handleText(c))
	assert.Empty(t, c.Sent)
}

func TestHandler_SendError(t *testing.T) {
	h := newTestHandler()
	c := testutil.NewFakeContext(&tele.User{ID: 1}, "hello")
	c.SendErr = fmt.Errorf("telegram: bot was blocked by the user")

	assert.Error(t, h.handleText(c))
}
