package module

import (
	"testing"
	"time"

	"articlestats/internal/platform/config"
)

func TestFromConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Options
	}{
		{
			name: "defaults",
			env:  map[string]string{"CORE_REPORT_OUTPUT": "", "CORE_REPORT_PG": "", "CORE_REPORT_CH": "", "CORE_REPORT_STATEMENT_TIMEOUT": ""},
			want: Options{Output: "output.xlsx", PG: true, CH: true, StatementTimeout: 30 * time.Second},
		},
		{
			name: "overridden",
			env:  map[string]string{"CORE_REPORT_OUTPUT": "runs/./Output.xlsx", "CORE_REPORT_PG": "false", "CORE_REPORT_CH": "", "CORE_REPORT_STATEMENT_TIMEOUT": "5s"},
			want: Options{Output: "runs/Output.xlsx", PG: false, CH: true, StatementTimeout: 5 * time.Second},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if got := FromConfig(config.New()); got != tc.want {
				t.Fatalf("FromConfig = %+v, want %+v", got, tc.want)
			}
		})
	}
}
