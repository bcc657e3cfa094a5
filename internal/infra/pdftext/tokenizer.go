// Package pdftext tokenizes PDF page content into pages, text items and runs
// using ledongthuc/pdf.
package pdftext

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"pdf-intake/internal/domain"

	"github.com/ledongthuc/pdf"
)

var _ domain.TextTokenizer = (*Tokenizer)(nil)

// wordGap is the horizontal gap, as a fraction of the font size, that starts a new run.
const wordGap = 0.2

// Tokenizer parses PDFs on a background goroutine. Every call to Parse is
// independent; a Tokenizer holds no state and may be shared.
type Tokenizer struct {
	parse func(data []byte) (*domain.TextDocument, error)
}

// NewTokenizer creates a tokenizer backed by ledongthuc/pdf.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{parse: tokenize}
}

// Parse starts parsing data and returns a channel that receives exactly one
// event and is then closed. The channel is buffered so the parser never
// blocks when nobody is listening any more.
func (t *Tokenizer) Parse(data []byte) <-chan domain.TokenizerEvent {
	events := make(chan domain.TokenizerEvent, 1)

	go func() {
		defer close(events)
		defer func() {
			// ledongthuc/pdf panics on many malformed inputs.
			if r := recover(); r != nil {
				events <- domain.TokenizerEvent{Err: fmt.Errorf("pdf tokenizer panic: %v", r)}
			}
		}()

		doc, err := t.parse(data)
		if err != nil {
			events <- domain.TokenizerEvent{Err: err}
			return
		}
		events <- domain.TokenizerEvent{Document: doc}
	}()

	return events
}

func tokenize(data []byte) (*domain.TextDocument, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	doc := &domain.TextDocument{Pages: make([]domain.TextPage, 0, numPages)}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, domain.TextPage{})
			continue
		}

		var tp domain.TextPage
		for _, row := range groupRows(page.Content().Text) {
			tp.Texts = append(tp.Texts, domain.TextItem{Runs: groupRuns(row)})
		}
		doc.Pages = append(doc.Pages, tp)
	}

	return doc, nil
}

// groupRows buckets glyphs by baseline, top of the page first. Glyphs keep
// their left-to-right order inside a row.
func groupRows(glyphs []pdf.Text) [][]pdf.Text {
	type row struct {
		y      int64
		glyphs []pdf.Text
	}
	var rows []*row
	byY := make(map[int64]*row)

	for _, g := range glyphs {
		y := int64(math.Round(g.Y))
		r, ok := byY[y]
		if !ok {
			r = &row{y: y}
			byY[y] = r
			rows = append(rows, r)
		}
		r.glyphs = append(r.glyphs, g)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := make([][]pdf.Text, 0, len(rows))
	for _, r := range rows {
		sort.SliceStable(r.glyphs, func(i, j int) bool { return r.glyphs[i].X < r.glyphs[j].X })
		out = append(out, r.glyphs)
	}
	return out
}

// groupRuns merges glyphs of one row into runs. ledongthuc/pdf does not emit
// space glyphs, so word boundaries show up as gaps. A run ends at a blank glyph,
// at a change of font or size, or at a gap wider than wordGap*FontSize.
func groupRuns(glyphs []pdf.Text) []domain.TextRun {
	var runs []domain.TextRun
	var sb strings.Builder
	var prev *pdf.Text

	flush := func() {
		if sb.Len() > 0 {
			runs = append(runs, domain.TextRun{T: sb.String()})
			sb.Reset()
		}
	}

	for i := range glyphs {
		g := &glyphs[i]
		if strings.TrimSpace(g.S) == "" {
			flush()
			prev = nil
			continue
		}
		if prev != nil && (g.Font != prev.Font || g.FontSize != prev.FontSize ||
			g.X-(prev.X+prev.W) > wordGap*g.FontSize) {
			flush()
		}
		sb.WriteString(g.S)
		prev = g
	}
	flush()

	return runs
}
