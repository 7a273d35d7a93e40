package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/physiq/internal/progress"
)

type progressReader interface {
	Streaks(ctx context.Context, userID int) (*progress.StreakResult, error)
	Week(ctx context.Context, userID int) ([]progress.WeekDay, error)
	Range(ctx context.Context, userID int, from, to time.Time) ([]progress.Outcome, error)
}

// contextService is what the tool handlers need, kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetStreaks(ctx context.Context, userID int) (*progress.StreakResult, error)
	GetWeek(ctx context.Context, userID int) ([]progress.WeekDay, error)
	GetRange(ctx context.Context, userID int, from, to time.Time) ([]progress.Outcome, error)
}

type ContextService struct {
	schema   SchemaRepo
	progress progressReader
}

func NewContextService(schemaRepo SchemaRepo, progress progressReader) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		progress: progress,
	}
}

// GetSchema returns the schema of the progress, plan, profile and chat tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetProgressColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Physiq DB Schema\n\nNo progress tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Physiq DB Schema\n\n")
	b.WriteString("Tables: " + strings.Join(progressTables, ", ") + " (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetStreaks(ctx context.Context, userID int) (*progress.StreakResult, error) {
	return s.progress.Streaks(ctx, userID)
}

func (s *ContextService) GetWeek(ctx context.Context, userID int) ([]progress.WeekDay, error) {
	return s.progress.Week(ctx, userID)
}

func (s *ContextService) GetRange(ctx context.Context, userID int, from, to time.Time) ([]progress.Outcome, error) {
	return s.progress.Range(ctx, userID, from, to)
}
