package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/social-data-provider/internal/facebook"
)

const timeFormat = "2006-01-02 15:04"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRecordsTable(w io.Writer, records []facebook.Schema) error {
	tw := newTabWriter(w)
	tw.writef("ID\tCREATED\tFROM\tMESSAGE\tLINK\n")
	for i := range records {
		r := &records[i]

		created := "-"
		if !r.CreatedTime.IsZero() {
			created = r.CreatedTime.UTC().Format(timeFormat)
		}
		from := "-"
		if r.From != nil {
			from = r.From.Name
		}

		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			created,
			from,
			truncate(oneLine(r.Message), 50),
			r.Link,
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
