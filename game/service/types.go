package service

import (
	"time"

	"github.com/rmacedo/twenty48/game/engine"
)

// BoardState is the renderable snapshot exposed to transports.
type BoardState struct {
	Grid     engine.Grid `json:"grid"`
	Score    int         `json:"score"`
	MaxTile  int         `json:"max_tile"`
	GameOver bool        `json:"game_over"`
	Moves    int         `json:"moves"`
}

// SessionInfo describes a session for API responses.
type SessionInfo struct {
	ID             string      `json:"id"`
	ConfigName     string      `json:"config_name"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	BoardState     *BoardState `json:"board_state"`
}

// MoveRecord is one entry in a session's cumulative move history.
type MoveRecord struct {
	Direction  string    `json:"direction"`
	Moved      bool      `json:"moved"`
	ScoreGain  int       `json:"score_gain"`
	Score      int       `json:"score"`
	MoveNumber int       `json:"move_number"`
	Timestamp  time.Time `json:"timestamp"`
}

// MoveOutcome is the result of a single move request.
type MoveOutcome struct {
	Direction string      `json:"direction"`
	Moved     bool        `json:"moved"`
	ScoreGain int         `json:"score_gain"`
	GameOver  bool        `json:"game_over"`
	State     *BoardState `json:"state"`
}

// StepInfo summarizes one executed step of a bulk move.
type StepInfo struct {
	Idx        int    `json:"idx"`
	Direction  string `json:"direction"`
	Moved      bool   `json:"moved"`
	ScoreGain  int    `json:"score_gain"`
	ScoreAfter int    `json:"score_after"`
}

// BulkMoveResult is the result of a bulk move request.
type BulkMoveResult struct {
	RequestedMoves int         `json:"requested_moves"`
	MovesExecuted  int         `json:"moves_executed"`
	ScoreDelta     int         `json:"score_delta"`
	Truncated      bool        `json:"truncated,omitempty"`
	Limit          int         `json:"limit,omitempty"`
	StoppedReason  string      `json:"stopped_reason,omitempty"`
	StoppedOnMove  int         `json:"stopped_on_move,omitempty"`
	Steps          []StepInfo  `json:"steps"`
	GameOver       bool        `json:"game_over"`
	State          *BoardState `json:"state"`
}

// HistoryOptions controls move history pagination.
type HistoryOptions struct {
	Page  int
	Limit int
	Order string // "asc" or "desc"
}

// HistoryResponse is a paginated slice of move history.
type HistoryResponse struct {
	Moves       []MoveRecord `json:"moves"`
	TotalMoves  int          `json:"total_moves"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	HasNext     bool         `json:"has_next"`
	HasPrevious bool         `json:"has_previous"`
}
