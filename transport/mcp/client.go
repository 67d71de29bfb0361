package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rmacedo/twenty48/game/config"
	"github.com/rmacedo/twenty48/game/engine"
	"github.com/rmacedo/twenty48/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"2048 Puzzle Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`2048 Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Slide tiles on a 4x4 grid. Equal tiles merge into their sum and every
merge scores the merged value. The game ends when no move can change
the board.

AVAILABLE TOOLS:
- board_state: Get the current board
- move: Single move (up/down/left/right) - requires intent explanation
- bulk_move: Multiple moves at once - requires intent explanation
- restart_game: Restart the board (score to zero, history kept)
- move_history: View past moves
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available presets
- game_instructions: Get comprehensive game rules

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the preset to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "board_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleBoardState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide the board in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to slide",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple moves in sequence",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"moves": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": []string{"up", "down", "left", "right"},
					},
					"description": "Array of moves",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of moves (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "moves"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Restart the board: two fresh tiles, score to zero, history kept",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game rules and strategy notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_id"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nPreset: %s\n\n%s",
		session.ID, session.ConfigName, formatBoardState(session.BoardState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		score := 0
		if s.BoardState != nil {
			score = s.BoardState.Score
		}
		result += fmt.Sprintf("- %s (Preset: %s, Score: %d, Created: %s)\n",
			s.ID, s.ConfigName, score, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleBoardState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state service.BoardState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatBoardState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
	}

	var result service.MoveOutcome
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveOutcome(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	// Convert moves to string array
	moves := make([]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		if move, ok := m.(string); ok {
			moves = append(moves, move)
		}
	}

	body := map[string]interface{}{
		"moves": moves,
	}

	var result service.BulkMoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bulk-move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatBulkMoveResult(sessionID, &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string              `json:"message"`
		State   *service.BoardState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/restart", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatBoardState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []config.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Presets:\n\n"
	for _, cfg := range configs {
		seeded := "unseeded"
		if cfg.Seeded {
			seeded = "seeded"
		}
		result += fmt.Sprintf("• %s (%s)\n  %s\n\n", cfg.ConfigID, seeded, cfg.Description)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `2048 Puzzle - Complete Rules

GAME OBJECTIVE:
Build large tiles by sliding and merging. Every merge adds the merged
tile's value to your score. Play continues as long as some move can
change the board.

BOARD:
A 4x4 grid. A fresh board starts with two tiles. Each tile is a power
of two; empty cells are shown blank (zero internally).

MOVES:
- up, down, left, right - slide every tile as far as it goes
- Tiles with equal values that collide merge into their sum
- A tile merges at most once per move: 2,2,2,2 -> 4,4 (never 8)
- Merging is resolved from the leading edge: 2,2,2 -> 4,2
- After any move that changes the board, one new tile spawns on a
  random empty cell: 4 with 10% probability, otherwise 2
- A move that changes nothing is a no-op: no spawn, no score, no error

SCORING:
Each merge scores the value of the merged tile. Merging two 64s scores
128. Sliding without merging scores nothing.

GAME OVER:
The game is over when the board is full and no two adjacent tiles are
equal. No move can change the board at that point.

RESTART:
restart_game clears the board to a fresh two-tile start and resets the
score. The session's random stream continues where it left off, and the
cumulative move history is kept.

STRATEGY NOTES:
- Keep your largest tile in a corner and build a gradient toward it
- Prefer two directions (e.g. left and down) and avoid the other two
- An "up" that does nothing is wasted only in time: no tile spawns,
  so probing directions is safe
- Use bulk_move for efficiency, but check game_over in the result

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Seeded presets replay the exact same tile sequence every time`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nPreset: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatBoardState(session.BoardState))
}

func formatBoardState(state *service.BoardState) string {
	if state == nil {
		return "No board state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Score: %d | Max tile: %d | Moves: %d\n\n",
		state.Score, state.MaxTile, state.Moves))

	result.WriteString(renderGrid(state.Grid))

	if state.GameOver {
		result.WriteString("\nGAME OVER - no moves left")
	}

	return result.String()
}

// renderGrid draws the board as a plain text table. Cells are wide
// enough for the largest tile, minimum 4 characters.
func renderGrid(grid engine.Grid) string {
	width := 4
	for _, row := range grid {
		for _, v := range row {
			if l := len(fmt.Sprintf("%d", v)); l > width {
				width = l
			}
		}
	}

	hbar := "+"
	for j := 0; j < engine.Size; j++ {
		hbar += strings.Repeat("-", width) + "+"
	}

	var b strings.Builder
	b.WriteString(hbar + "\n")
	for _, row := range grid {
		b.WriteString("|")
		for _, v := range row {
			cell := ""
			if v != 0 {
				cell = fmt.Sprintf("%d", v)
			}
			pad := width - len(cell)
			left := pad / 2
			b.WriteString(strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left))
			b.WriteString("|")
		}
		b.WriteString("\n" + hbar + "\n")
	}
	return b.String()
}

func formatMoveOutcome(result *service.MoveOutcome) string {
	response := ""
	if result.Moved {
		response = fmt.Sprintf("Moved %s (+%d)\n", result.Direction, result.ScoreGain)
	} else {
		response = fmt.Sprintf("No-op: %s changed nothing\n", result.Direction)
	}

	response += "\n" + formatBoardState(result.State)
	return response
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Session: %s\n", sessionID))
	b.WriteString(fmt.Sprintf("Executed %d/%d moves (score +%d)\n",
		result.MovesExecuted, result.RequestedMoves, result.ScoreDelta))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated to the per-call limit of %d moves\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason))
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps:\n")
		for _, s := range result.Steps {
			status := "no-op"
			if s.Moved {
				status = fmt.Sprintf("+%d", s.ScoreGain)
			}
			b.WriteString(fmt.Sprintf("%d. %s %s (score %d)\n", s.Idx, s.Direction, status, s.ScoreAfter))
		}
	}

	b.WriteString("\n")
	b.WriteString(formatBoardState(result.State))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) — Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		status := "no-op"
		if move.Moved {
			status = fmt.Sprintf("+%d", move.ScoreGain)
		}
		result += fmt.Sprintf("%d. %s %s [Score: %d]\n",
			move.MoveNumber, move.Direction, status, move.Score)
	}

	return result
}
