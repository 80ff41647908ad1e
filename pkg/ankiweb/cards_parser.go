package ankiweb

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

var resultRowMatcher = cascadia.MustCompile(`table tr`)
var resultCellMatcher = cascadia.MustCompile(`td`)
var spacesRegexp = regexp.MustCompile(`\s+`)

// ParseCardsHTML extracts cards from the search page. Rows without data
// cells, like the table header, are skipped.
func ParseCardsHTML(page io.Reader) ([]*Card, error) {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return nil, fmt.Errorf("can not parse page: %w", err)
	}

	cards := make([]*Card, 0)
	doc.FindMatcher(resultRowMatcher).Each(func(i int, row *goquery.Selection) {
		cells := row.ChildrenMatcher(resultCellMatcher).Map(func(i int, td *goquery.Selection) string {
			return normalizeCell(td.Text())
		})
		if len(cells) == 0 {
			return
		}
		cards = append(cards, &Card{
			SortField: cells[0],
			Cells:     cells,
		})
	})
	return cards, nil
}

func normalizeCell(text string) string {
	return strings.TrimSpace(spacesRegexp.ReplaceAllString(text, " "))
}
