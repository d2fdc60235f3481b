package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/factlog/internal/domain"
)

// RenderRecord prints one record in a friendly, ASCII-first format.
func RenderRecord(w io.Writer, r domain.Record) {
	label := r.Label
	if !r.HasLabel() {
		label = "(no label)"
	}
	fmt.Fprintf(w, "%s  %s  value=%d  created %s\n", r.ID, label, r.Value, humanize.Time(r.CreatedAt))
}

// RenderRecords prints the record listing, newest first.
func RenderRecords(w io.Writer, records []domain.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records.")
		return
	}
	for _, r := range records {
		RenderRecord(w, r)
	}
}

// RenderRun prints a single command run with its full output.
func RenderRun(w io.Writer, run domain.CommandRun) {
	fmt.Fprintf(w, "Command: %s\n", run.Command)
	if run.RecordID != "" {
		fmt.Fprintf(w, "Record:  %s\n", run.RecordID)
	}
	fmt.Fprintln(w)
	if run.Output == "" {
		fmt.Fprintln(w, "(no output)")
		return
	}
	fmt.Fprintln(w, run.Output)
}

// RenderHistory prints recent runs, one block each.
func RenderHistory(w io.Writer, runs []domain.CommandRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No command runs recorded yet.")
		return
	}
	for _, run := range runs {
		target := run.RecordID
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(w, "%s  %-10s  record=%s  %s\n", run.ID, run.Command, target, humanize.Time(run.StartedAt))
	}
}
