package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rmacedo/twenty48/game/config"
	"github.com/rmacedo/twenty48/game/engine"
)

// gameServiceImpl implements the GameService interface. The mutex is the
// external synchronization the engine requires when exposed to multiple
// callers: every board operation runs under it.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for
// consistent API responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// snapshot builds a BoardState from a session's board.
func snapshot(sess *Session) *BoardState {
	return &BoardState{
		Grid:     sess.Board.Grid(),
		Score:    sess.Board.Score(),
		MaxTile:  sess.Board.MaxTile(),
		GameOver: !sess.Board.HasMoves(),
		Moves:    len(sess.History),
	}
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		BoardState:     snapshot(sess),
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cfg *config.GameConfig
	var err error
	if configName != "" {
		cfg, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, c := range availableConfigs {
						configIDs = append(configIDs, c.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		cfg = s.configs.GetDefault()
	}

	// Let the session manager generate a proper 4-character ID
	sess, err := s.sessions.Create("", cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(sess)
	if configName != "" {
		info.ConfigName = configName
	}
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move executes a single move for a session. An unrecognized direction is
// not an error: it comes back as moved=false with zero gain, exactly like
// a legal move that cannot change the board.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, direction string) (*MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	result := s.applyMove(sess, direction)

	state := snapshot(sess)
	return &MoveOutcome{
		Direction: direction,
		Moved:     result.Moved,
		ScoreGain: result.ScoreGain,
		GameOver:  state.GameOver,
		State:     state,
	}, nil
}

// applyMove runs one move on the session's board and records it. Callers
// hold the service lock.
func (s *gameServiceImpl) applyMove(sess *Session, direction string) engine.MoveResult {
	var result engine.MoveResult
	if dir, ok := engine.ParseDirection(direction); ok {
		result = sess.Board.Move(dir)
	}

	sess.History = append(sess.History, MoveRecord{
		Direction:  direction,
		Moved:      result.Moved,
		ScoreGain:  result.ScoreGain,
		Score:      sess.Board.Score(),
		MoveNumber: len(sess.History) + 1,
		Timestamp:  time.Now(),
	})

	return result
}

// BulkMove executes multiple moves in sequence, stopping early when the
// board reaches a terminal state.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, directions []string) (*BulkMoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	startScore := sess.Board.Score()
	result := &BulkMoveResult{
		RequestedMoves: len(directions),
		Steps:          make([]StepInfo, 0, len(directions)),
	}

	if len(directions) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		directions = directions[:engine.MaxBulkMoves]
	}

	for i, direction := range directions {
		if !sess.Board.HasMoves() {
			result.StoppedReason = "game_over"
			result.StoppedOnMove = i + 1
			break
		}

		moveResult := s.applyMove(sess, direction)
		result.MovesExecuted++
		result.Steps = append(result.Steps, StepInfo{
			Idx:        i + 1,
			Direction:  direction,
			Moved:      moveResult.Moved,
			ScoreGain:  moveResult.ScoreGain,
			ScoreAfter: sess.Board.Score(),
		})
	}

	state := snapshot(sess)
	result.State = state
	result.GameOver = state.GameOver
	result.ScoreDelta = sess.Board.Score() - startScore
	return result, nil
}

// Restart resets a session's board to a fresh game. The random stream
// continues from where it was, so seeded sessions stay reproducible
// across restarts. The move history survives; only the board and score
// reset.
func (s *gameServiceImpl) Restart(ctx context.Context, sessionID string) (*BoardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	sess.Board.Restart()
	return snapshot(sess), nil
}

// GetBoardState retrieves the current board state
func (s *gameServiceImpl) GetBoardState(ctx context.Context, sessionID string) (*BoardState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return snapshot(sess), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.History
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []MoveRecord
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else if start < total {
		moves = history[start:end]
	}

	if moves == nil {
		moves = []MoveRecord{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*config.ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*config.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game preset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, cfg *config.GameConfig) error {
	return s.configs.SaveConfig(configName, cfg)
}
