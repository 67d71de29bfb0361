package service

import (
	"context"
	"time"

	"github.com/rmacedo/twenty48/game/config"
	"github.com/rmacedo/twenty48/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, direction string) (*MoveOutcome, error)
	BulkMove(ctx context.Context, sessionID string, directions []string) (*BulkMoveResult, error)
	Restart(ctx context.Context, sessionID string) (*BoardState, error)

	// Game State
	GetBoardState(ctx context.Context, sessionID string) (*BoardState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*config.ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*config.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, cfg *config.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, cfg *config.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, cfg *config.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles game preset loading
type ConfigManager interface {
	LoadConfig(name string) (*config.GameConfig, error)
	ListConfigs() ([]*config.ConfigInfo, error)
	GetDefault() *config.GameConfig
	SaveConfig(name string, cfg *config.GameConfig) error
}

// Session represents an active game session. The board assumes
// single-threaded ownership, so all access goes through the service,
// which serializes operations.
type Session struct {
	ID             string
	Board          *engine.Board
	Config         *config.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time

	// History is cumulative across restarts within the session.
	History []MoveRecord
}
