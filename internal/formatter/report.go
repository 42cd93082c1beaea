package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dadrocktabs/api/internal/models"
	"github.com/dadrocktabs/api/internal/services"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	countStyle = lipgloss.NewStyle().Bold(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// RenderSyncResult renders a sync run report for terminal output.
func RenderSyncResult(result *services.SyncResult) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Channel sync") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("added:"), countStyle.Render(fmt.Sprint(result.Added))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("skipped:"), countStyle.Render(fmt.Sprint(result.Skipped))))

	if len(result.Errors) > 0 {
		b.WriteString(errStyle.Render(fmt.Sprintf("%d item(s) failed:", len(result.Errors))) + "\n")
		for _, e := range result.Errors {
			b.WriteString("  - " + e + "\n")
		}
	}

	b.WriteString(result.Message + "\n")
	return b.String()
}

// RenderStats renders the aggregate catalog counts for terminal output.
func RenderStats(stats models.Stats) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Catalog stats") + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("videos:"), countStyle.Render(fmt.Sprint(stats.TotalVideos))))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("artists:"), countStyle.Render(fmt.Sprint(stats.TotalArtists))))

	return b.String()
}
