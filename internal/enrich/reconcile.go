package enrich

import (
	"context"
	"log/slog"

	"github.com/shanehull/icchain/internal/model"
)

// Source tells where a resolved mapping came from.
type Source string

const (
	SourceKnown  Source = "known"
	SourcePrior  Source = "prior"
	SourceLookup Source = "lookup"
	SourceNone   Source = ""
)

type Stats struct {
	Total      int
	Resolved   int
	Private    int
	Acquired   int
	Unresolved int
	BySource   map[Source]int
}

func (s *Stats) add(m model.ForeignMapping, src Source) {
	s.Total++
	s.BySource[src]++
	if m.Resolved() {
		s.Resolved++
	} else {
		s.Unresolved++
	}
	if m.Private() {
		s.Private++
	}
	if m.Acquired() {
		s.Acquired++
	}
}

// Reconciler resolves foreign company names to symbols. Precedence: the
// curated table, then the prior reconciliation file, then the lookup.
type Reconciler struct {
	known  Table
	lookup SymbolLookup // optional
	logger *slog.Logger
}

func NewReconciler(known Table, lookup SymbolLookup, logger *slog.Logger) *Reconciler {
	return &Reconciler{known: known, lookup: lookup, logger: logger}
}

// Resolve never fails; an unresolved name comes back with blank fields.
func (r *Reconciler) Resolve(ctx context.Context, name string, prior map[string]model.ForeignMapping) (model.ForeignMapping, Source) {
	if m, ok := r.known.Get(name); ok {
		m.Name = name
		return m, SourceKnown
	}
	if m, ok := prior[name]; ok && !m.Empty() {
		m.Name = name
		return m, SourcePrior
	}
	if r.lookup != nil && ctx.Err() == nil {
		m, err := r.lookup.Lookup(ctx, name)
		if err != nil {
			r.logger.Debug("Symbol lookup failed", "name", name, "err", err)
		} else if m.Symbol != "" {
			m.Name = name
			return m, SourceLookup
		}
	}
	return model.ForeignMapping{Name: name}, SourceNone
}

// Reconcile resolves names in order and returns one mapping per name.
func (r *Reconciler) Reconcile(ctx context.Context, names []string, prior map[string]model.ForeignMapping) ([]model.ForeignMapping, Stats) {
	stats := Stats{BySource: make(map[Source]int)}
	out := make([]model.ForeignMapping, 0, len(names))
	for _, name := range names {
		m, src := r.Resolve(ctx, name, prior)
		stats.add(m, src)
		out = append(out, m)
	}
	return out, stats
}
