// Package testutil builds small PDF fixtures in memory for tests.
package testutil

import (
	"bytes"
	"fmt"
	"strings"
)

// PDFInfo is the document information dictionary of a fixture.
// Empty fields are left out of the dictionary.
type PDFInfo struct {
	Title    string
	Author   string
	Creator  string
	Producer string
}

func (i PDFInfo) empty() bool {
	return i.Title == "" && i.Author == "" && i.Creator == "" && i.Producer == ""
}

// BuildPDF returns a valid single-revision PDF with one page per entry in
// pages. Lines of a page (split on "\n") are drawn on separate baselines in
// Courier 12pt, with explicit glyph widths so text positions advance.
func BuildPDF(info PDFInfo, pages ...string) []byte {
	b := &builder{}
	b.buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")

	// Object numbers are fixed up front so pages can reference their parent.
	const catalogNum, pagesNum, fontNum = 1, 2, 3
	next := 4
	infoNum := 0
	if !info.empty() {
		infoNum = next
		next++
	}

	pageNums := make([]int, len(pages))
	contentNums := make([]int, len(pages))
	for i := range pages {
		pageNums[i] = next
		contentNums[i] = next + 1
		next += 2
	}

	kids := make([]string, len(pages))
	for i, n := range pageNums {
		kids[i] = fmt.Sprintf("%d 0 R", n)
	}

	b.object(catalogNum, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum))
	b.object(pagesNum, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	b.object(fontNum, fmt.Sprintf(
		"<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>",
		strings.TrimSpace(strings.Repeat("600 ", 126-32+1))))

	if infoNum != 0 {
		var d strings.Builder
		d.WriteString("<<")
		for _, kv := range [][2]string{
			{"Title", info.Title},
			{"Author", info.Author},
			{"Creator", info.Creator},
			{"Producer", info.Producer},
		} {
			if kv[1] != "" {
				fmt.Fprintf(&d, " /%s (%s)", kv[0], escape(kv[1]))
			}
		}
		d.WriteString(" >>")
		b.object(infoNum, d.String())
	}

	for i, text := range pages {
		b.object(pageNums[i], fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesNum, fontNum, contentNums[i]))

		stream := contentStream(text)
		b.object(contentNums[i], fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	xrefOffset := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", next)
	b.buf.WriteString("0000000000 65535 f \n")
	for n := 1; n < next; n++ {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", b.offsets[n])
	}

	trailer := fmt.Sprintf("<< /Size %d /Root %d 0 R", next, catalogNum)
	if infoNum != 0 {
		trailer += fmt.Sprintf(" /Info %d 0 R", infoNum)
	}
	trailer += " >>"
	fmt.Fprintf(&b.buf, "trailer\n%s\nstartxref\n%d\n%%%%EOF\n", trailer, xrefOffset)

	return b.buf.Bytes()
}

type builder struct {
	buf     bytes.Buffer
	offsets map[int]int
}

func (b *builder) object(num int, body string) {
	if b.offsets == nil {
		b.offsets = make(map[int]int)
	}
	b.offsets[num] = b.buf.Len()
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
}

func contentStream(text string) string {
	if text == "" {
		return ""
	}
	var s strings.Builder
	s.WriteString("BT\n/F1 12 Tf\n72 720 Td\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			s.WriteString("0 -16 Td\n")
		}
		fmt.Fprintf(&s, "(%s) Tj\n", escape(line))
	}
	s.WriteString("ET")
	return s.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
