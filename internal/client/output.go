package client

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/MKhiriev/go-pass-envelope/internal/app"
	"github.com/MKhiriev/go-pass-envelope/models"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	hintColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.Bold)
)

type printer struct {
	out    io.Writer
	errOut io.Writer
}

func (p printer) success(format string, a ...any) {
	successColor.Fprintf(p.out, "✓ "+format+"\n", a...)
}

func (p printer) warn(format string, a ...any) {
	warnColor.Fprintf(p.errOut, "! "+format+"\n", a...)
}

func (p printer) line(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// failure prints err and, for a failed result, the follow-up hint.
func (p printer) failure(err error) {
	errorColor.Fprintf(p.errOut, "✗ %s\n", err)

	var resErr *ResultError
	if errors.As(err, &resErr) {
		if hint := app.Hint(resErr.Code); hint != "" {
			hintColor.Fprintf(p.errOut, "  %s\n", hint)
		}
	}
}

func (p printer) entries(entries []models.VaultEntry) {
	if len(entries) == 0 {
		p.line("no entries")
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	headerColor.Fprintln(w, "ID\tTITLE\tUSERNAME\tWEBSITE\tUPDATED")
	for _, e := range entries {
		title := e.Title
		if e.IsFavorite {
			title = "★ " + title
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, title, e.Username, e.Website, e.UpdatedAt.Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

func (p printer) entry(e models.VaultEntry) {
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", e.ID)
	fmt.Fprintf(w, "Title:\t%s\n", e.Title)
	fmt.Fprintf(w, "Username:\t%s\n", e.Username)
	fmt.Fprintf(w, "Website:\t%s\n", e.Website)
	if e.Category != "" {
		fmt.Fprintf(w, "Category:\t%s\n", e.Category)
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(e.Tags, ", "))
	}
	if e.Notes != "" {
		fmt.Fprintf(w, "Notes:\t%s\n", e.Notes)
	}
	for _, f := range e.CustomFields {
		value := f.Value
		if f.Hidden {
			value = "********"
		}
		fmt.Fprintf(w, "%s:\t%s\n", f.Name, value)
	}
	_ = w.Flush()
}

func (p printer) importResult(r models.ImportResult) {
	mode := ""
	if r.DryRun {
		mode = " (dry run, nothing written)"
	}
	p.line("import%s: strategy %s", mode, r.Strategy)
	p.line("  total %d, imported %d, skipped %d, duplicates %d, failed %d",
		r.Total, r.Imported, r.Skipped, r.Duplicates, r.Failed)
	for _, e := range r.Errors {
		p.warn("%s", e)
	}
}
