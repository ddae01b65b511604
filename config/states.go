package config

// RoundStateID represents the lifecycle state of a round
type RoundStateID int

const (
	RoundPlaying RoundStateID = iota
	RoundWon
	RoundLost
)
