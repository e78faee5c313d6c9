package domain

import "fmt"

// State represents user's current interaction state
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateAwaitingNewWord
	StateAwaitingNewTranslation
	StateAwaitingDeleteChoice
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateAwaitingNewWord:
		return "awaiting_new_word"
	case StateAwaitingNewTranslation:
		return "awaiting_new_translation"
	case StateAwaitingDeleteChoice:
		return "awaiting_delete_choice"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MaxDistractors is the number of wrong options shown with a card
const MaxDistractors = 3

// CardContext is one quiz presentation. It is not modified after creation.
type CardContext struct {
	Target      string
	Translation string
	Distractors []string
	// Options is the answer order shown to the user
	Options []string
}

// Session holds the per-user conversation state
type Session struct {
	UserID      int64
	State       State
	Card        *CardContext
	Solved      bool
	PendingWord string
	Greeted     bool
}

// NewSession returns an idle session for the user
func NewSession(userID int64) Session {
	return Session{UserID: userID, State: StateIdle}
}

// Valid reports whether the fields agree with the state
func (s Session) Valid() error {
	if (s.Card != nil) != (s.State == StateAwaitingAnswer) {
		return fmt.Errorf("card presence does not match state %s", s.State)
	}
	if s.PendingWord != "" && s.State != StateAwaitingNewTranslation {
		return fmt.Errorf("pending word set in state %s", s.State)
	}
	if s.Solved && s.Card == nil {
		return fmt.Errorf("solved flag without a card")
	}
	if c := s.Card; c != nil {
		if len(c.Distractors) > MaxDistractors {
			return fmt.Errorf("too many distractors: %d", len(c.Distractors))
		}
		for _, d := range c.Distractors {
			if d == c.Target {
				return fmt.Errorf("target %q among distractors", c.Target)
			}
		}
	}
	return nil
}

// WithCard moves the session to answering the given card
func (s Session) WithCard(card *CardContext) Session {
	s.State = StateAwaitingAnswer
	s.Card = card
	s.Solved = false
	s.PendingWord = ""
	return s
}

// WithState moves the session to a state that carries no card
func (s Session) WithState(state State) Session {
	s.State = state
	s.Card = nil
	s.Solved = false
	if state != StateAwaitingNewTranslation {
		s.PendingWord = ""
	}
	return s
}
