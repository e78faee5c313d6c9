package handler

import (
	"wordcards/internal/domain"
	"wordcards/internal/middleware"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCommand passes a command to the engine without its payload or bot suffix
func (h *Handler) handleCommand(command string) tele.HandlerFunc {
	return func(c tele.Context) error {
		return h.respond(c, command)
	}
}

// handleText passes the message text to the engine unchanged
func (h *Handler) handleText(c tele.Context) error {
	return h.respond(c, c.Text())
}

func (h *Handler) respond(c tele.Context, text string) error {
	sender := c.Sender()
	if sender == nil {
		h.logger.Warn("Update without sender, ignoring")
		return nil
	}

	reply := h.engine.Handle(domain.Inbound{
		UserID:      sender.ID,
		DisplayName: sender.Username,
		Text:        text,
	})

	var opts []interface{}
	if markup := replyMarkup(reply); markup != nil {
		opts = append(opts, markup)
	}

	if err := c.Send(reply.Text, opts...); err != nil {
		h.logger.Error("Failed to send reply",
			zap.Error(err),
			zap.Int64("user_id", sender.ID),
			zap.Any("trace_id", c.Get(middleware.TraceIDKey)),
		)
		return err
	}
	return nil
}
