package service

import (
	"errors"
	"fmt"
	"strings"

	"wordcards/internal/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// controlButtons are offered under every card
var controlButtons = []string{domain.BtnNext, domain.BtnAddWord, domain.BtnDeleteWord}

// QuizEngine turns inbound text into the next session state and a reply.
// It never talks to the transport.
type QuizEngine struct {
	users    *UserService
	words    *WordService
	selector *Selector
	sessions *SessionStore
	logger   *zap.Logger
}

// NewQuizEngine creates a quiz engine with an empty session store
func NewQuizEngine(
	users *UserService,
	words *WordService,
	selector *Selector,
	logger *zap.Logger,
) *QuizEngine {
	return &QuizEngine{
		users:    users,
		words:    words,
		selector: selector,
		sessions: NewSessionStore(),
		logger:   logger,
	}
}

// Handle processes one inbound message for its user.
// On failure the session is left as it was.
func (e *QuizEngine) Handle(in domain.Inbound) domain.Reply {
	var reply domain.Reply

	e.sessions.Do(in.UserID, func(current domain.Session) domain.Session {
		next, r, err := e.dispatch(current, in)
		if err == nil {
			err = next.Valid()
		}
		if err != nil {
			reply = e.failure(current, err)
			return current
		}

		if next.State != current.State {
			e.logger.Debug("Session state changed",
				zap.Int64("user_id", in.UserID),
				zap.Stringer("from", current.State),
				zap.Stringer("to", next.State),
			)
		}
		reply = r
		return next
	})

	return reply
}

// Session returns a snapshot of the user's session
func (e *QuizEngine) Session(userID int64) domain.Session {
	return e.sessions.Get(userID)
}

func (e *QuizEngine) failure(s domain.Session, err error) domain.Reply {
	e.logger.Error("Failed to handle message",
		zap.Int64("user_id", s.UserID),
		zap.Stringer("state", s.State),
		zap.Error(err),
	)

	if errors.Is(err, domain.ErrStoreUnavailable) {
		return domain.Reply{Text: msgUnavailable}
	}
	return domain.Reply{Text: msgInternalError}
}

func (e *QuizEngine) dispatch(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	if in.IsCardsCommand() {
		return e.cards(s, in)
	}

	switch s.State {
	case domain.StateAwaitingNewWord:
		return e.acceptWord(s, in)
	case domain.StateAwaitingNewTranslation:
		return e.acceptTranslation(s, in)
	case domain.StateAwaitingDeleteChoice:
		return e.acceptDelete(s, in)
	}

	switch in.Text {
	case domain.BtnNext:
		return e.cards(s, in)
	case domain.BtnAddWord:
		return s.WithState(domain.StateAwaitingNewWord), domain.Reply{
			Text:           msgEnterWord,
			RemoveKeyboard: true,
		}, nil
	case domain.BtnDeleteWord:
		return e.listDeletable(s, in)
	}

	if s.State == domain.StateAwaitingAnswer && !s.Solved {
		return e.evaluate(s, in)
	}

	// no card to answer: start over
	return e.cards(s, in)
}

// cards presents a fresh card, or tells the user there is nothing to learn
func (e *QuizEngine) cards(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	if err := e.users.Register(in.UserID, in.DisplayName); err != nil {
		return s, domain.Reply{}, fmt.Errorf("register user: %w", err)
	}

	words, err := e.words.Vocabulary(in.UserID)
	if err != nil {
		return s, domain.Reply{}, fmt.Errorf("load vocabulary: %w", err)
	}

	var greeting string
	if !s.Greeted {
		greeting = msgGreeting
		s.Greeted = true
	}

	card := e.selector.Pick(words)
	if card == nil {
		return s.WithState(domain.StateIdle), domain.Reply{
			Text:    joinText(greeting, msgNoWords),
			Buttons: []string{domain.BtnAddWord},
			Columns: 1,
		}, nil
	}

	buttons := append([]string{}, card.Options...)
	buttons = append(buttons, e.selector.Shuffle(controlButtons)...)

	return s.WithCard(card), domain.Reply{
		Text:    joinText(greeting, fmt.Sprintf(msgChooseTemplate, card.Translation)),
		Buttons: buttons,
		Columns: 2,
	}, nil
}

// cardsAfterWrite follows a committed add or delete with a fresh card.
// The write cannot be undone, so a failed card load still leaves the sub-flow.
func (e *QuizEngine) cardsAfterWrite(s domain.Session, in domain.Inbound, notice string) (domain.Session, domain.Reply, error) {
	next, reply, err := e.cards(s, in)
	if err != nil {
		e.logger.Warn("Failed to show card after write",
			zap.Int64("user_id", in.UserID),
			zap.Error(err),
		)
		text := msgInternalError
		if errors.Is(err, domain.ErrStoreUnavailable) {
			text = msgUnavailable
		}
		return s.WithState(domain.StateIdle), domain.Reply{
			Text:    joinText(notice, text),
			Buttons: []string{domain.BtnNext},
			Columns: 1,
		}, nil
	}

	reply.Text = joinText(notice, reply.Text)
	return next, reply, nil
}

// evaluate checks an answer to the current card. Matching is exact.
func (e *QuizEngine) evaluate(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	card := s.Card

	if in.Text == card.Target {
		s.Solved = true
		return s, domain.Reply{
			Text:    fmt.Sprintf(msgCorrectTemplate, card.Target, card.Translation),
			Buttons: e.selector.Shuffle(controlButtons),
			Columns: 2,
		}, nil
	}

	chosen := strings.TrimSuffix(in.Text, domain.WrongMark)
	buttons := lo.Map(card.Options, func(option string, _ int) string {
		if option == chosen && option != card.Target {
			return option + domain.WrongMark
		}
		return option
	})
	buttons = append(buttons, controlButtons...)

	return s, domain.Reply{
		Text:    fmt.Sprintf(msgWrongTemplate, card.Translation),
		Buttons: buttons,
		Columns: 2,
	}, nil
}

func (e *QuizEngine) acceptWord(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	word := NormalizeWord(in.Text)
	if word == "" {
		return s, domain.Reply{Text: msgEnterWord}, nil
	}

	next := s.WithState(domain.StateAwaitingNewTranslation)
	next.PendingWord = word
	return next, domain.Reply{Text: msgEnterTranslation}, nil
}

func (e *QuizEngine) acceptTranslation(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	translation := NormalizeWord(in.Text)
	if translation == "" {
		return s, domain.Reply{Text: msgEnterTranslation}, nil
	}

	// the add flow can start from a stale keyboard before any cards flow
	if err := e.users.Register(in.UserID, in.DisplayName); err != nil {
		return s, domain.Reply{}, fmt.Errorf("register user: %w", err)
	}

	word := s.PendingWord
	if err := e.words.AddUserWord(in.UserID, word, translation); err != nil {
		return s, domain.Reply{}, fmt.Errorf("add word: %w", err)
	}

	e.logger.Info("Word pair saved",
		zap.Int64("user_id", in.UserID),
		zap.String("word", word),
		zap.String("translation", translation),
	)

	return e.cardsAfterWrite(s, in, fmt.Sprintf(msgWordAdded, word, translation))
}

func (e *QuizEngine) listDeletable(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	words, err := e.words.UserWords(in.UserID)
	if err != nil {
		return s, domain.Reply{}, fmt.Errorf("load user words: %w", err)
	}

	if len(words) == 0 {
		return s, domain.Reply{Text: msgNothingToDelete}, nil
	}

	texts := lo.Uniq(lo.Map(words, func(w domain.Word, _ int) string {
		return w.Text
	}))
	buttons := append(e.selector.Shuffle(texts), domain.BtnCancel)

	return s.WithState(domain.StateAwaitingDeleteChoice), domain.Reply{
		Text:    msgChooseDelete,
		Buttons: buttons,
		Columns: 1,
	}, nil
}

func (e *QuizEngine) acceptDelete(s domain.Session, in domain.Inbound) (domain.Session, domain.Reply, error) {
	if in.Text == domain.BtnCancel {
		return e.cards(s, in)
	}

	if err := e.words.DeleteUserWord(in.UserID, in.Text); err != nil {
		return s, domain.Reply{}, fmt.Errorf("delete word: %w", err)
	}

	e.logger.Info("Word deleted",
		zap.Int64("user_id", in.UserID),
		zap.String("word", in.Text),
	)

	return e.cardsAfterWrite(s, in, fmt.Sprintf(msgWordDeleted, in.Text))
}

func joinText(parts ...string) string {
	return strings.Join(lo.Without(parts, ""), "\n\n")
}
