// Package sheet reads article sources from and writes results to xlsx workbooks
package sheet

import (
	stderrs "errors"
	"io/fs"
	"strings"

	perr "articlestats/internal/platform/errors"
	"articlestats/internal/services/articles/domain"

	"github.com/xuri/excelize/v2"
)

// Header names located in the first row
const (
	ColID  = "URL_ID"
	ColURL = "URL"
)

// ReadSources reads URL_ID and URL from the first sheet of the workbook at path
// rows without a url are skipped; a row without an id gets one derived from its url
func ReadSources(path string) ([]domain.Source, error) {
	f, err := excelize.OpenFile(path)
	if stderrs.Is(err, fs.ErrNotExist) {
		return nil, perr.NotFoundf("input workbook %s not found", path)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeSheet, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, perr.Sheetf("%s has no sheets", path)
	}
	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeSheet, "read %s", sheets[0])
	}
	defer func() { _ = rows.Close() }()

	idCol, urlCol := -1, -1
	var out []domain.Source
	seen := map[string]int{}
	line := 0
	for rows.Next() {
		line++
		cols, err := rows.Columns()
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeSheet, "row %d", line)
		}
		if idCol < 0 {
			idCol, urlCol = locate(cols)
			if idCol < 0 || urlCol < 0 {
				return nil, perr.Sheetf("%s: header must contain %s and %s", path, ColID, ColURL)
			}
			continue
		}
		url := strings.TrimSpace(cell(cols, urlCol))
		if url == "" {
			continue
		}
		id := strings.TrimSpace(cell(cols, idCol))
		if id == "" {
			id = domain.HashID(url)
		}
		if prev, dup := seen[id]; dup {
			return nil, perr.WithField(perr.InvalidArgf("duplicate %s %q on rows %d and %d", ColID, id, prev, line), ColID)
		}
		seen[id] = line
		out = append(out, domain.Source{ID: id, URL: url})
	}
	if err := rows.Error(); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeSheet, "read %s", sheets[0])
	}
	if idCol < 0 {
		return nil, perr.Sheetf("%s is empty", path)
	}
	return out, nil
}

func locate(header []string) (id, url int) {
	id, url = -1, -1
	for i, h := range header {
		switch {
		case strings.EqualFold(strings.TrimSpace(h), ColID):
			id = i
		case strings.EqualFold(strings.TrimSpace(h), ColURL):
			url = i
		}
	}
	return id, url
}

func cell(cols []string, i int) string {
	if i < len(cols) {
		return cols[i]
	}
	return ""
}
