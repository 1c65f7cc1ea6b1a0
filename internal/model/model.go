package model

import (
	"encoding/json"
	"time"
)

// Game status values stored in the archive.
const (
	GameRunning  = "running"
	GameFinished = "finished"
)

// Game is an archived simulated game.
type Game struct {
	ID         string     `json:"id"`
	Seed       int64      `json:"seed"`
	Players    int        `json:"players"`
	Status     string     `json:"status"` // running, finished
	Winner     string     `json:"winner,omitempty"`
	Turns      int        `json:"turns"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// Turn is the snapshot recorded after one processed turn.
type Turn struct {
	GameID    string          `json:"game_id"`
	Turn      int             `json:"turn"`
	State     json.RawMessage `json:"state"`
	Battles   int             `json:"battles"`
	CreatedAt time.Time       `json:"created_at"`
}

// WinCount is one leaderboard entry.
type WinCount struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}
