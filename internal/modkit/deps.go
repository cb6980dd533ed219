package modkit

import (
	"articlestats/internal/modkit/repokit"
	"articlestats/internal/platform/config"
	"articlestats/internal/platform/logger"
	"articlestats/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// every store seam is optional and nil when its backend is not configured
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	KV  store.KV
}

// FromStore fills the store seams from an opened Store
func FromStore(log logger.Logger, cfg config.Conf, st *store.Store) Deps {
	d := Deps{Log: log, Cfg: cfg}
	if st != nil {
		d.PG, d.CH, d.KV = st.PG, st.CH, st.KV
	}
	return d
}
