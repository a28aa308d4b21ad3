package saps

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// resultColumns maps result-table column indices to status fields. The page
// carries columns 2, 5 and 6 as well but this mapping does not use them. A
// markup change upstream should only ever require touching this table.
var resultColumns = struct {
	ApplicationType   int
	ApplicationNumber int
	Calibre           int
	Make              int
	Status            int
	Description       int
	NextStep          int
}{
	ApplicationType:   0,
	ApplicationNumber: 1,
	Calibre:           3,
	Make:              4,
	Status:            7,
	Description:       8,
	NextStep:          9,
}

// minResultColumns is the smallest column count the mapping above can be
// applied to. Fewer columns means the page schema changed.
const minResultColumns = 10

// resultRow holds the raw cell text extracted from the first data row
type resultRow struct {
	ApplicationType   string
	ApplicationNumber string
	Calibre           string
	Make              string
	Status            string
	Description       string
	NextStep          string
}

// parseResultRow locates the results table in the enquiry page and extracts
// the first data row. A page with no results table but with an enquiry form
// means the lookup matched nothing; a page with neither means the site format
// changed.
func parseResultRow(html string) (*resultRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &SchemaMismatchError{Reason: "response is not parseable HTML"}
	}

	table := doc.Find("table.table")
	if table.Length() == 0 {
		if doc.Find("form").Length() > 0 {
			return nil, ErrNoMatch
		}
		return nil, &SchemaMismatchError{Reason: "no results table and no enquiry form present"}
	}

	rows := table.First().Find("tr")
	if rows.Length() < 2 {
		return nil, &SchemaMismatchError{Reason: "results table has no data row"}
	}

	cells := rows.Eq(1).Find("td")
	if cells.Length() < minResultColumns {
		return nil, &SchemaMismatchError{Reason: "results row has fewer columns than expected"}
	}

	cell := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}

	return &resultRow{
		ApplicationType:   cell(resultColumns.ApplicationType),
		ApplicationNumber: cell(resultColumns.ApplicationNumber),
		Calibre:           cell(resultColumns.Calibre),
		Make:              cell(resultColumns.Make),
		Status:            cell(resultColumns.Status),
		Description:       cell(resultColumns.Description),
		NextStep:          cell(resultColumns.NextStep),
	}, nil
}
