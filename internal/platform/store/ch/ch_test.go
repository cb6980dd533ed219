package ch

import (
	"context"
	"errors"
	"strings"
	"testing"

	kit "articlestats/internal/platform/testkit"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func TestBuildClientInfo(t *testing.T) {
	info := BuildClientInfo(" pipeline ", "articlestats")
	if len(info.Products) != 4 {
		t.Fatalf("products = %+v", info.Products)
	}
	if info.Products[0].Name != "articlestats" || info.Products[1].Version != "pipeline" {
		t.Fatalf("unexpected products %+v", info.Products)
	}
	if !strings.HasPrefix(info.Products[2].Version, "go") {
		t.Fatalf("go version = %q", info.Products[2].Version)
	}
}

func TestOpen_Errors(t *testing.T) {
	kit.Serial(t)
	ctx := context.Background()

	if _, err := Open(ctx, Config{}); err == nil {
		t.Fatalf("empty DSN should fail")
	}
	if _, err := Open(ctx, Config{URL: "clickhouse://%zz"}); err == nil || !strings.Contains(err.Error(), "parse dsn") {
		t.Fatalf("bad DSN should fail to parse, got %v", err)
	}

	var seen *clickhouse.Options
	kit.Swap(t, &openConn, func(o *clickhouse.Options) (driver.Conn, error) {
		seen = o
		return nil, errors.New("dial refused")
	})
	_, err := Open(ctx, Config{URL: "clickhouse://127.0.0.1:9000/articles", Role: "api"})
	if err == nil || !strings.Contains(err.Error(), "dial refused") {
		t.Fatalf("open error not surfaced: %v", err)
	}
	if seen == nil || seen.Auth.Database != "articles" || seen.ClientInfo.Products[1].Version != "api" {
		t.Fatalf("options not built from DSN: %+v", seen)
	}
}
