package service

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"pdf-intake/internal/domain"
)

// PageBreak separates the text of consecutive pages.
const PageBreak = "\n\nPage Break\n\n"

// AssembleText flattens a tokenized document into plain text. Runs of a text
// item are joined with a space and percent-decoded, items of a page are
// joined with a space, and pages are joined with PageBreak. Items without
// runs are skipped.
func AssembleText(doc *domain.TextDocument) string {
	if doc == nil {
		return ""
	}

	pages := make([]string, len(doc.Pages))
	for i, page := range doc.Pages {
		items := make([]string, 0, len(page.Texts))
		for _, item := range page.Texts {
			if len(item.Runs) == 0 {
				continue
			}
			items = append(items, decodeText(joinRuns(item.Runs)))
		}
		pages[i] = strings.Join(items, " ")
	}

	return strings.Join(pages, PageBreak)
}

func joinRuns(runs []domain.TextRun) string {
	parts := make([]string, len(runs))
	for i, r := range runs {
		parts[i] = r.T
	}
	return strings.Join(parts, " ")
}

// decodeText percent-decodes s. Malformed escapes, or escapes that decode to
// invalid UTF-8, leave s untouched.
func decodeText(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return s
	}
	return decoded
}
