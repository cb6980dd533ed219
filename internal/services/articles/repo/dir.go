// Package repo holds the article text stores
package repo

import (
	"context"
	stderrs "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	perr "articlestats/internal/platform/errors"
)

const ext = ".txt"

// Dir stores one UTF-8 file per article at <root>/<URL_ID>.txt
type Dir struct {
	root string
}

// NewDir returns a Dir rooted at root; the directory is created on first Put
func NewDir(root string) *Dir { return &Dir{root: filepath.Clean(root)} }

// Root returns the directory path
func (d *Dir) Root() string { return d.root }

func (d *Dir) path(id string) (string, error) {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return "", perr.InvalidArgf("invalid article id %q", id)
	}
	return filepath.Join(d.root, id+ext), nil
}

// Get reads the text for id
func (d *Dir) Get(_ context.Context, id string) (string, error) {
	p, err := d.path(id)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if stderrs.Is(err, fs.ErrNotExist) {
		return "", perr.NotFoundf("article %s not saved", id)
	}
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "read article %s", id)
	}
	return string(b), nil
}

// Put writes text for id through a .part file and a rename, so readers never see half a file
func (d *Dir) Put(_ context.Context, id, text string) error {
	p, err := d.path(id)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create %s", d.root)
	}
	tmp := p + ".part"
	if err := os.WriteFile(tmp, []byte(text), 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write article %s", id)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "commit article %s", id)
	}
	return nil
}

// Exists reports whether a text is saved for id
func (d *Dir) Exists(_ context.Context, id string) (bool, error) {
	p, err := d.path(id)
	if err != nil {
		return false, err
	}
	fi, err := os.Stat(p)
	if stderrs.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return fi.Mode().IsRegular(), nil
}

// List returns the saved ids in name order
func (d *Dir) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.root)
	if stderrs.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ext))
	}
	sort.Strings(ids)
	return ids, nil
}

// Empty reports whether the directory is missing or holds no entries at all
func (d *Dir) Empty(_ context.Context) (bool, error) {
	f, err := os.Open(d.root)
	if stderrs.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()
	names, err := f.Readdirnames(1)
	if len(names) > 0 {
		return false, nil
	}
	if err != nil && !stderrs.Is(err, io.EOF) {
		return false, err
	}
	return true, nil
}
