package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "articlestats/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	fetch := New().Prefix("CORE_").Prefix("FETCH_")
	if got := fetch.Key("WORKERS"); got != "CORE_FETCH_WORKERS" {
		t.Fatalf("Key() = %q, want %q", got, "CORE_FETCH_WORKERS")
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  articlestats ")
	if got := c.MustString("NAME"); got != "articlestats" {
		t.Fatalf("MustString = %q, want %q", got, "articlestats")
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want 8", got)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustDurationAndPort(t *testing.T) {
	c := New().Prefix("D_")
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MustDuration("TIMEOUT"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	t.Setenv("D_BAD", "nope")
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })

	t.Setenv("D_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("D_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

func TestRequireAndHas(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	c.Require("A", "B")
	kit.MustPanic(t, func() { c.Require("A", "C") })

	if !c.Has("A") || c.Has("C") {
		t.Fatalf("Has mismatch")
	}
}

func TestMayFallbacks(t *testing.T) {
	c := New().Prefix("M_")

	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d", got)
	}

	t.Setenv("M_INT", "nope")
	if got := c.MayInt("INT", 3); got != 3 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
	t.Setenv("M_BYTES", "8388608")
	if got := c.MayInt64("BYTES", 1); got != 8<<20 {
		t.Fatalf("MayInt64 = %d", got)
	}
	t.Setenv("M_RATIO", "0.25")
	if got := c.MayFloat64("RATIO", 1); got != 0.25 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	t.Setenv("M_ON", "true")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool = false, want true")
	}
	t.Setenv("M_DELAY", "2s")
	if got := c.MayDuration("DELAY", 0); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_ORIGINS", " a.com, ,b.com ,")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "a.com" || got[1] != "b.com" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("CSV_BLANK", " , ")
	if got := c.MayCSV("BLANK", []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("MayCSV blank should use default, got %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	t.Setenv("E_FORMAT", "JSON")
	if got := c.MayEnum("FORMAT", "console", "console", "json"); got != "json" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("E_BAD", "xml")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "console", "console", "json") })
}

func TestMayPath(t *testing.T) {
	c := New().Prefix("PATH_")
	t.Setenv("PATH_ARTICLES", "data//articles/")
	if got := c.MayPath("ARTICLES", "articles"); got != filepath.Clean("data/articles") {
		t.Fatalf("MayPath = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	t.Setenv("PATH_DICT", "~/dict")
	if got := c.MayPath("DICT", ""); got != filepath.Join(home, "dict") {
		t.Fatalf("MayPath home = %q", got)
	}
}
