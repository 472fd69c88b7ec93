// Package markdown builds the small Markdown report files the plotting
// tools emit next to their figures.
package markdown

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Doc accumulates Markdown text in emission order.
type Doc struct {
	buf strings.Builder
}

func NewDoc() *Doc {
	return &Doc{}
}

// Heading writes a heading of the given level (1 = #, 2 = ##, ...).
func (d *Doc) Heading(level int, text string) {
	d.buf.WriteString(strings.Repeat("#", level))
	d.buf.WriteByte(' ')
	d.buf.WriteString(text)
	d.buf.WriteString("\n\n")
}

// Linef writes one formatted line followed by a newline.
func (d *Doc) Linef(format string, args ...any) {
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

// Blank writes an empty line.
func (d *Doc) Blank() {
	d.buf.WriteByte('\n')
}

// Bullet writes a list item.
func (d *Doc) Bullet(format string, args ...any) {
	d.buf.WriteString("- ")
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

// Table writes a pipe table with a separator row under the header.
func (d *Doc) Table(header []string, rows [][]string) {
	d.Linef("| %s |", strings.Join(header, " | "))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	d.Linef("|%s|", strings.Join(sep, "|"))

	for _, row := range rows {
		d.Linef("| %s |", strings.Join(row, " | "))
	}
}

func (d *Doc) String() string {
	return d.buf.String()
}

// WriteFile writes the document, overwriting any previous report.
func (d *Doc) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Meta identifies one report run.
type Meta struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Source      string
}

func NewMeta(source string) Meta {
	return Meta{
		RunID:       uuid.New(),
		GeneratedAt: time.Now(),
		Source:      source,
	}
}

// Write emits the metadata block under the report title.
func (m Meta) Write(d *Doc) {
	d.Linef("Generated: %s", m.GeneratedAt.Format("2006-01-02 15:04:05"))
	d.Linef("Run ID: %s", m.RunID)
	if m.Source != "" {
		d.Linef("Data file: %s", m.Source)
	}
	d.Blank()
}
