package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nvelliott/flyt/internal/config"
	"github.com/nvelliott/flyt/internal/models"
)

func TestMain(m *testing.M) {
	InitStyles(config.DefaultTheme())
	m.Run()
}

func testStatus() models.StatusDefinition {
	return models.StatusDefinition{Key: "in_progress", Name: "In Progress", Type: models.StatusInProgress}
}

func testIssues(n int) []models.Issue {
	issues := make([]models.Issue, n)
	for i := range issues {
		issues[i] = models.Issue{
			ID:     fmt.Sprintf("issue-%d", i+1),
			Title:  fmt.Sprintf("Test Issue %d", i+1),
			Status: "in_progress",
		}
	}
	return issues
}

func TestRenderCardTitleTruncation(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"short title", "Fix login", "Fix login"},
		{"exact limit", strings.Repeat("a", cardTitleMaxLength), strings.Repeat("a", cardTitleMaxLength)},
		{"over limit", strings.Repeat("b", cardTitleMaxLength+10), strings.Repeat("b", cardTitleMaxLength) + "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderCard(models.Issue{ID: "x", Title: tt.title}, CardProps{})
			if !strings.Contains(result, tt.want) {
				t.Errorf("RenderCard() = %q, want to contain %q", result, tt.want)
			}
		})
	}
}

func TestRenderCardMeta(t *testing.T) {
	issue := models.Issue{
		ID:          "x",
		Title:       "Estimate shown",
		StoryPoints: 5,
		Fields: map[string]models.FieldValue{
			"severity": models.OptionValue("high"),
		},
	}

	result := RenderCard(issue, CardProps{})
	if !strings.Contains(result, "5 pts") {
		t.Errorf("RenderCard() = %q, want story points in meta line", result)
	}
	if !strings.Contains(result, "1 fields") {
		t.Errorf("RenderCard() = %q, want field count in meta line", result)
	}
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		status   models.StatusDefinition
		count    int
		wantText string
	}{
		{"empty column", models.StatusDefinition{Key: "todo", Name: "Backlog"}, 0, "Backlog (0)"},
		{"single issue", models.StatusDefinition{Key: "doing", Name: "In Progress"}, 1, "In Progress (1)"},
		{"many issues", models.StatusDefinition{Key: "done", Name: "Done"}, 42, "Done (42)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderColumn(ColumnProps{
				Status:           tt.status,
				Issues:           testIssues(tt.count),
				SelectedIssueIdx: -1,
				Height:           30,
			})
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("RenderColumn() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderColumnEmptyMessage(t *testing.T) {
	result := RenderColumn(ColumnProps{
		Status:           testStatus(),
		SelectedIssueIdx: -1,
		Height:           30,
	})

	if !strings.Contains(result, "No issues") {
		t.Error("RenderColumn() should contain 'No issues' message for an empty column")
	}
}

func TestRenderColumnScrollIndicators(t *testing.T) {
	issues := testIssues(20)

	// Scrolled down: top indicator visible
	scrolled := RenderColumn(ColumnProps{
		Status:           testStatus(),
		Issues:           issues,
		SelectedIssueIdx: -1,
		Height:           30,
		ScrollOffset:     5,
	})
	if !strings.Contains(scrolled, "▲") {
		t.Error("should show top indicator when scrolled down")
	}
	if !strings.Contains(scrolled, "▼") {
		t.Error("should show bottom indicator when more issues remain below")
	}

	// At top with everything visible: no indicators
	short := RenderColumn(ColumnProps{
		Status:           testStatus(),
		Issues:           testIssues(2),
		SelectedIssueIdx: -1,
		Height:           30,
	})
	if strings.Contains(short, "▲") || strings.Contains(short, "▼") {
		t.Errorf("RenderColumn() = %q, want no scroll indicators when all issues fit", short)
	}
}

func TestVisibleCardCount(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   int
	}{
		{"tiny terminal", 6, 1},
		{"one card", ColumnOverhead + CardHeight, 1},
		{"three cards", ColumnOverhead + 3*CardHeight, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VisibleCardCount(tt.height); got != tt.want {
				t.Errorf("VisibleCardCount(%d) = %d, want %d", tt.height, got, tt.want)
			}
		})
	}
}

func TestRenderStatusBar(t *testing.T) {
	tests := []struct {
		name     string
		props    StatusBarProps
		wantText string
	}{
		{"idle", StatusBarProps{Width: 80}, "flyt"},
		{"idle hint", StatusBarProps{Width: 80}, "? help"},
		{"searching", StatusBarProps{Width: 80, Searching: true, SearchQuery: "login"}, "/ login"},
		{"grab mode", StatusBarProps{Width: 80, Grabbing: true}, "moving issue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderStatusBar(tt.props)
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("RenderStatusBar() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}
