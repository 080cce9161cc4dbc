package model

// PlayerID uniquely identifies a player across the platform.
// IDs are allocated from a durable monotonic counter and never reused.
type PlayerID int

// Player represents a registered account on the platform
type Player struct {
	ID          PlayerID
	Email       string // unique case-insensitively; stored lowercased
	DisplayName string // 1-20 chars, trimmed
	Name        string // 5-50 chars, trimmed
	Phone       string // optional free text
	JoinDate    EpochDay
}
