// Package console renders reconstruction results as terminal text.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/ryanuber/columnize"

	"github.com/vitalvas/sharerecon/shamir"
)

// Renderer turns results into styled text.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the given styles.
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = NewStyles(false)
	}
	return &Renderer{styles: styles}
}

// Render formats a result as a multi-section report.
func (r *Renderer) Render(res *shamir.Result) string {
	rep := res.Report()
	s := r.styles

	var b strings.Builder

	b.WriteString(s.Title.Render("Threshold share reconstruction"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n\n",
		s.Label.Render("declared:"),
		s.Value.Render(fmt.Sprintf("n = %d, k = %d, method = %s", rep.N, rep.K, rep.Method)))

	b.WriteString(s.Section.Render("Decoded shares"))
	b.WriteString("\n")
	b.WriteString(formatTable(shareRows(rep.Shares)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n\n", s.Label.Render("selected indices:"), s.Value.Render(joinIndices(rep.Selected)))

	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("polynomial:"), s.Value.Render("f(x) = "+rep.Expression))
	b.WriteString(formatTable(termRows(rep.Terms)))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", s.Label.Render("constant term (secret):"), s.Emphasis.Render(rep.Constant))

	return b.String()
}

// RenderError formats the user-facing notice for a failed reconstruction.
func (r *Renderer) RenderError(err error) string {
	return r.styles.Error.Render(fmt.Sprintf("Reconstruction failed (%s)", shamir.ErrorKind(err)))
}

// WriteJSON writes the result report as indented JSON.
func WriteJSON(w io.Writer, res *shamir.Result) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(res.Report(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func shareRows(shares []shamir.ShareReport) []string {
	rows := make([]string, 0, len(shares)+1)
	rows = append(rows, "Index | Base | Value | Decoded | Fits float64")

	for _, sh := range shares {
		fits := "yes"
		if !sh.Exact {
			fits = "no"
		}
		rows = append(rows, fmt.Sprintf("%d | %d | %s | %s | %s", sh.Index, sh.Base, sh.Value, sh.Decoded, fits))
	}

	return rows
}

func termRows(terms []shamir.TermReport) []string {
	rows := make([]string, 0, len(terms)+1)
	rows = append(rows, "Degree | Coefficient")

	for _, t := range terms {
		rows = append(rows, fmt.Sprintf("%d | %s", t.Degree, t.Coefficient))
	}

	return rows
}

func formatTable(rows []string) string {
	conf := columnize.DefaultConfig()
	conf.Delim = "|"
	conf.Glue = "  "
	conf.Empty = "<none>"

	return columnize.Format(rows, conf)
}

func joinIndices(indices []int64) string {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.FormatInt(idx, 10)
	}
	return strings.Join(parts, ", ")
}
