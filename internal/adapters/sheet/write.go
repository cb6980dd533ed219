package sheet

import (
	"os"
	"path/filepath"

	perr "articlestats/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet results are written to
const DefaultSheet = "Sheet1"

// Writer streams rows into a new workbook
type Writer struct {
	f       *excelize.File
	sw      *excelize.StreamWriter
	row     int
	flushed bool
}

// NewWriter starts a workbook whose first row is header
func NewWriter(header []string) (*Writer, error) {
	f := excelize.NewFile()
	sw, err := f.NewStreamWriter(DefaultSheet)
	if err != nil {
		_ = f.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeSheet, "stream writer")
	}
	// ids and urls read better wide
	if err := sw.SetColWidth(1, 2, 24); err != nil {
		_ = f.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeSheet, "column width")
	}
	w := &Writer{f: f, sw: sw}
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := w.Append(hdr...); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// Append writes the next row
func (w *Writer) Append(vals ...any) error {
	if w.flushed {
		return perr.Sheetf("append after save")
	}
	w.row++
	at, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeSheet, "cell name")
	}
	if err := w.sw.SetRow(at, vals); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeSheet, "row %d", w.row)
	}
	return nil
}

// Rows reports how many rows were written, header included
func (w *Writer) Rows() int { return w.row }

func (w *Writer) flush() error {
	if w.flushed {
		return nil
	}
	w.flushed = true
	if err := w.sw.Flush(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeSheet, "flush")
	}
	return nil
}

// Bytes returns the finished workbook
func (w *Writer) Bytes() ([]byte, error) {
	if err := w.flush(); err != nil {
		return nil, err
	}
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSheet, "encode workbook")
	}
	return buf.Bytes(), nil
}

// Save writes the workbook to path
func (w *Writer) Save(path string) error {
	b, err := w.Bytes()
	if err != nil {
		return err
	}
	return WriteFile(path, b)
}

// WriteFile writes an encoded workbook to path through a .part file and a rename
func WriteFile(path string, b []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "create %s", dir)
		}
	}
	tmp := path + ".part"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		_ = os.Remove(tmp)
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "commit %s", path)
	}
	return nil
}

// Close releases the workbook
func (w *Writer) Close() error { return w.f.Close() }
