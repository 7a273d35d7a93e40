package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/2beens/physiq/internal/progress"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var ErrNoUser = errors.New("no user for this session")

// UserResolver maps the tool input onto the user whose data is read.
type UserResolver func(ctx context.Context, username string) (int, error)

// SessionUser always resolves to the user that opened the MCP session, the input is ignored.
func SessionUser(userID int) UserResolver {
	return func(context.Context, string) (int, error) {
		return userID, nil
	}
}

// UserInput is the input of the tools reading one user's data.
type UserInput struct {
	Username string `json:"username,omitempty" jsonschema:"Username to read progress for. Ignored over HTTP where the session user is used"`
}

type Handler struct {
	service     contextService
	resolveUser UserResolver
}

func NewHandler(service contextService, resolveUser UserResolver) *Handler {
	return &Handler{
		service:     service,
		resolveUser: resolveUser,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetSchemaTool returns the MCP tool handler for get_physiq_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

// GetStreaksTool returns the MCP tool handler for get_streaks.
func (h *Handler) GetStreaksTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := h.resolveUser(ctx, in.Username)
		if err != nil {
			return errorResult("Error resolving user: " + err.Error()), nil, nil
		}
		streaks, err := h.service.GetStreaks(ctx, userID)
		if err != nil {
			return errorResult("Error calculating streaks: " + err.Error()), nil, nil
		}
		return jsonResult(streaks), nil, nil
	}
}

// GetWeekProgressTool returns the MCP tool handler for get_week_progress.
func (h *Handler) GetWeekProgressTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		userID, err := h.resolveUser(ctx, in.Username)
		if err != nil {
			return errorResult("Error resolving user: " + err.Error()), nil, nil
		}
		week, err := h.service.GetWeek(ctx, userID)
		if err != nil {
			return errorResult("Error fetching week progress: " + err.Error()), nil, nil
		}
		return jsonResult(week), nil, nil
	}
}

// ProgressTimeRangeInput is the input for get_progress_for_time_range.
type ProgressTimeRangeInput struct {
	Username string `json:"username,omitempty" jsonschema:"Username to read progress for. Ignored over HTTP where the session user is used"`
	FromDate string `json:"from_date" jsonschema:"Start date (YYYY-MM-DD)"`
	ToDate   string `json:"to_date" jsonschema:"End date (YYYY-MM-DD)"`
}

// GetProgressForTimeRangeTool returns the MCP tool handler for get_progress_for_time_range.
func (h *Handler) GetProgressForTimeRangeTool() func(context.Context, *mcp.CallToolRequest, ProgressTimeRangeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressTimeRangeInput) (*mcp.CallToolResult, any, error) {
		from, err := progress.ParseDate(in.FromDate)
		if err != nil {
			return errorResult("Invalid from_date: use YYYY-MM-DD"), nil, nil
		}
		to, err := progress.ParseDate(in.ToDate)
		if err != nil {
			return errorResult("Invalid to_date: use YYYY-MM-DD"), nil, nil
		}
		userID, err := h.resolveUser(ctx, in.Username)
		if err != nil {
			return errorResult("Error resolving user: " + err.Error()), nil, nil
		}

		records, err := h.service.GetRange(ctx, userID, from, to)
		if err != nil {
			return errorResult("Error listing progress: " + err.Error()), nil, nil
		}
		if records == nil {
			records = []progress.Outcome{}
		}
		return jsonResult(records), nil, nil
	}
}
