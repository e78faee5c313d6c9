package handler

import (
	"wordcards/internal/middleware"
	"wordcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot    *tele.Bot
	engine *service.QuizEngine
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	engine *service.QuizEngine,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:    bot,
		engine: engine,
		logger: logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Use(
		middleware.Recover(h.logger),
		middleware.Logger(h.logger),
	)

	// Commands
	h.bot.Handle("/start", h.handleCommand("/start"))
	h.bot.Handle("/cards", h.handleCommand("/cards"))

	// Answers, button presses and sub-flow input
	h.bot.Handle(tele.OnText, h.handleText)
}
