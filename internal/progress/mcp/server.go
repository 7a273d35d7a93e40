package mcp

import (
	"net/http"

	"github.com/2beens/physiq/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the progress tools: schema, streaks, week and
// progress for a date range.
func NewServer(svc contextService, resolveUser UserResolver) *mcp.Server {
	h := NewHandler(svc, resolveUser)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "physiq-progress",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_physiq_schema",
		Description: "Returns the DB schema for daily_progress, plan, user_profile and chat_message: table names, columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streaks",
		Description: "Returns current and best streaks (workout, nutrition, overall) for the user. Best streaks look back 365 days.",
	}, h.GetStreaksTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_week_progress",
		Description: "Returns the current Monday to Sunday week with workout status, nutrition status and notes per day. Days without a record show missed/none.",
	}, h.GetWeekProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_for_time_range",
		Description: "Returns the stored daily progress records between from_date and to_date (YYYY-MM-DD, inclusive). Days without a record are left out.",
	}, h.GetProgressForTimeRangeTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Every session is bound to the user
// resolved by the auth middleware, requests without one get no server.
func NewHTTPHandler(svc contextService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			return nil
		}
		return NewServer(svc, SessionUser(userID))
	}, nil)
}
