package domain

// Word represents a word-translation pair
type Word struct {
	Text        string
	Translation string
}

// Scope tells which vocabulary a word belongs to
type Scope int

const (
	// ScopeUser words are visible only to the user who added them
	ScopeUser Scope = iota
	// ScopeCommon words are visible to every user
	ScopeCommon
)

func (s Scope) String() string {
	if s == ScopeCommon {
		return "common"
	}
	return "user"
}

// StarterWords are seeded into an empty common vocabulary
var StarterWords = []Word{
	{Text: "red", Translation: "красный"},
	{Text: "blue", Translation: "синий"},
	{Text: "green", Translation: "зеленый"},
	{Text: "yellow", Translation: "желтый"},
	{Text: "black", Translation: "черный"},
	{Text: "white", Translation: "белый"},
	{Text: "I", Translation: "я"},
	{Text: "you", Translation: "ты"},
	{Text: "he", Translation: "он"},
	{Text: "she", Translation: "она"},
}
