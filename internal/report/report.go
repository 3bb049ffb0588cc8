// Package report renders top-N results for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unitflow/pipeline"
)

// Defaults used by New.
const (
	DefaultWidth     = 6
	DefaultPrecision = 2
)

// ErrWidth is returned when a rendered value is wider than its column.
var ErrWidth = errors.New("value does not fit the column width")

// Row pairs a result with the same quantity in the source unit.
type Row struct {
	Source float64
	Target float64
}

// Reporter writes fixed-width result tables.
type Reporter struct {
	w         io.Writer
	width     int
	precision int
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithWidth sets the column width of every value.
func WithWidth(n int) Option {
	return func(r *Reporter) { r.width = n }
}

// WithPrecision sets the number of decimals printed.
func WithPrecision(p int) Option {
	return func(r *Reporter) { r.precision = p }
}

// New returns a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:         w,
		width:     DefaultWidth,
		precision: DefaultPrecision,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Pad renders v with precision decimals, right aligned in width columns.
func Pad(v float64, width, precision int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("report: width %d must be positive", width)
	}

	s := strconv.FormatFloat(v, 'f', max(precision, 0), 64)
	if len(s) > width {
		return "", fmt.Errorf("report: %q is %d columns wide, limit %d: %w", s, len(s), width, ErrWidth)
	}
	return strings.Repeat(" ", width-len(s)) + s, nil
}

// Rows pairs each result with back applied to it, rounded to precision,
// which recovers the source quantity of every result.
func Rows(results []float64, back pipeline.Converter, precision int) []Row {
	rows := make([]Row, len(results))

	for i, v := range results {
		rows[i] = Row{
			Source: pipeline.RoundTo(back.Convert(v), precision),
			Target: v,
		}
	}
	return rows
}

// Table writes a title line followed by one "source = target" line per row.
// Nothing is written when a value does not fit the column width.
func (r *Reporter) Table(title string, rows []Row, from, to pipeline.Unit) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", title)
	for _, row := range rows {
		src, err := Pad(row.Source, r.width, r.precision)
		if err != nil {
			return err
		}
		dst, err := Pad(row.Target, r.width, r.precision)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "\t%s %s = %s %s\n", src, from, dst, to)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Empty reports that no measurement fell inside rng.
func (r *Reporter) Empty(rng pipeline.Range, unit pipeline.Unit) error {
	_, err := fmt.Fprintf(r.w, "no measurements in range %v %s\n", rng, unit)
	return err
}
