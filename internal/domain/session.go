package domain

// Session is the per-chat conversational state. Selected is consumed by
// exactly one prediction attempt and reset to ModelNone afterwards,
// regardless of outcome.
type Session struct {
	ChatID   int64
	Selected ModelID
}
