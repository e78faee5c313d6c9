package domain

// Button labels shared by the engine and the transport
const (
	BtnAddWord    = "Добавить слово ➕"
	BtnDeleteWord = "Удалить слово🔙"
	BtnNext       = "Дальше ⏭"
	BtnCancel     = "Отмена"
)

// WrongMark is appended to an option the user picked incorrectly
const WrongMark = "❌"

// Inbound is a text event delivered by the transport
type Inbound struct {
	UserID      int64
	DisplayName string
	Text        string
}

// IsCardsCommand reports whether the text restarts the quiz
func (in Inbound) IsCardsCommand() bool {
	return in.Text == "/start" || in.Text == "/cards"
}

// Reply tells the transport what to send back.
// Nil Buttons with RemoveKeyboard unset keep the keyboard the user already has.
type Reply struct {
	Text           string
	Buttons        []string
	Columns        int
	RemoveKeyboard bool
}
