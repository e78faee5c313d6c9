package handler

import (
	"wordcards/internal/domain"

	tele "gopkg.in/telebot.v3"
)

const defaultColumns = 2

// replyMarkup renders reply buttons as a reply keyboard.
// It returns nil when the current keyboard should stay.
func replyMarkup(reply domain.Reply) *tele.ReplyMarkup {
	if reply.RemoveKeyboard {
		return &tele.ReplyMarkup{RemoveKeyboard: true}
	}
	if len(reply.Buttons) == 0 {
		return nil
	}

	columns := reply.Columns
	if columns <= 0 {
		columns = defaultColumns
	}

	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	btns := make([]tele.Btn, 0, len(reply.Buttons))
	for _, label := range reply.Buttons {
		btns = append(btns, markup.Text(label))
	}
	markup.Reply(markup.Split(columns, btns)...)

	return markup
}
