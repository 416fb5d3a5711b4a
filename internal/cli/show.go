package cli

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/EricaPomme/wowframeadj/internal/layout"
)

// execShow parses the layout file and prints a column-aligned summary
// table: header row, dash separator, one row per frame.
func execShow(o *IO, path string) error {
	file, err := layout.Load(path)
	if err != nil {
		return err
	}

	slog.Debug("parsed layout", "path", path, "frames", len(file.Frames))

	for _, line := range renderTable(file) {
		o.Println(line)
	}

	return nil
}

// renderTable builds the summary table. The Frame column comes first;
// the remaining columns are the union of attribute keys across all
// frames in ascending order. Columns are sized to the widest cell,
// measured in display width so wide runes don't skew alignment.
func renderTable(file *layout.File) []string {
	header := append([]string{layout.FrameKey}, attrKeyUnion(file)...)

	rows := make([][]string, 0, len(file.Frames))

	for _, frame := range file.Frames {
		row := make([]string, 0, len(header))
		row = append(row, frame.Name)

		for _, key := range header[1:] {
			if value, ok := frame.Attrs[key]; ok {
				row = append(row, value.String())
			} else {
				row = append(row, "")
			}
		}

		rows = append(rows, row)
	}

	widths := make([]int, len(header))

	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, formatRow(header, widths), separatorRow(widths))

	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}

	return lines
}

func attrKeyUnion(file *layout.File) []string {
	seen := make(map[string]bool)

	var keys []string

	for _, frame := range file.Frames {
		for key := range frame.Attrs {
			if !seen[key] {
				seen[key] = true

				keys = append(keys, key)
			}
		}
	}

	slices.Sort(keys)

	return keys
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(row))

	for i, cell := range row {
		cells[i] = cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
	}

	return strings.Join(cells, " | ")
}

func separatorRow(widths []int) string {
	dashes := make([]string, len(widths))

	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}

	return strings.Join(dashes, "-|-")
}
