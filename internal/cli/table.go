package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.flakedb/internal/engine"
	"go.flakedb/internal/storage"
)

const columnGap = 2

// printTable writes rows under header as left aligned columns. The renderer
// is bound to w, so plain writers get no escape codes.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	re := lipgloss.NewRenderer(w)
	headerStyle := re.NewStyle().Bold(true)
	cellStyle := re.NewStyle()

	line := func(style lipgloss.Style, cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			s := style
			if i < len(cells)-1 {
				s = s.Width(widths[i] + columnGap)
			}
			parts[i] = s.Render(cell)
		}
		fmt.Fprintln(w, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, parts...), " "))
	}

	line(headerStyle, header)
	for _, r := range rows {
		line(cellStyle, r)
	}
}

func printConstants(w io.Writer) {
	var rows [][]string
	for _, c := range engine.Constants() {
		rows = append(rows, []string{c.Group, c.Name, strconv.Itoa(c.Value)})
	}
	printTable(w, []string{"GROUP", "NAME", "VALUE"}, rows)
}

func printPages(w io.Writer, pages []storage.PageDigest) {
	if len(pages) == 0 {
		fmt.Fprintln(w, "no pages loaded")
		return
	}

	var rows [][]string
	for _, p := range pages {
		rows = append(rows, []string{
			strconv.Itoa(p.Index),
			strconv.FormatInt(int64(p.Index)*storage.PageSize, 10),
			p.Hex()[:16],
		})
	}
	printTable(w, []string{"PAGE", "OFFSET", "BLAKE2B"}, rows)
}
