// Package chainmap derives, for each watchlisted company, the companies that
// sit upstream and downstream of it in every industry chain it belongs to.
package chainmap

import (
	"github.com/shanehull/icchain/internal/model"
	"github.com/shanehull/icchain/internal/storage"
)

const (
	MaxCounterparts  = 20
	MaxSubcategories = 5
)

// orderedSet keeps the first occurrence of each value.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]bool)}
}

func (s *orderedSet) add(v string) {
	if s.seen[v] {
		return
	}
	s.seen[v] = true
	s.items = append(s.items, v)
}

func (s *orderedSet) first(n int) []string {
	if len(s.items) <= n {
		return s.items
	}
	return s.items[:n]
}

type Builder struct {
	// ChainName resolves a chain code to the label written in the map.
	ChainName func(code string) string
}

func NewBuilder() *Builder {
	return &Builder{ChainName: model.ChainLabel}
}

// Build emits one row per (watchlisted company, chain) pair in watchlist order,
// then chain order. The output depends only on the order of its inputs.
func (b *Builder) Build(tables []storage.ChainTable, watchlist []model.WatchlistEntry) []model.MapRow {
	var rows []model.MapRow
	for _, company := range watchlist {
		if !company.Valid() {
			continue
		}
		for _, table := range tables {
			if row, ok := b.buildRow(company, table); ok {
				rows = append(rows, row)
			}
		}
	}
	return rows
}

func (b *Builder) buildRow(company model.WatchlistEntry, table storage.ChainTable) (model.MapRow, bool) {
	var positions []model.Position
	seenPos := make(map[model.Position]bool)
	subcategories := newOrderedSet()

	for _, r := range table.Rows {
		if r.Code != company.Code {
			continue
		}
		if !seenPos[r.Position] {
			seenPos[r.Position] = true
			positions = append(positions, r.Position)
		}
		subcategories.add(r.Subcategory)
	}
	if len(positions) == 0 {
		return model.MapRow{}, false
	}

	upstream, downstream := newOrderedSet(), newOrderedSet()
	for _, pos := range positions {
		for _, r := range table.Rows {
			if r.Code == company.Code {
				continue
			}
			switch {
			case isUpstreamOf(r.Position, pos):
				upstream.add(r.Code + "|" + r.Name)
			case isUpstreamOf(pos, r.Position):
				downstream.add(r.Code + "|" + r.Name)
			}
		}
	}

	return model.MapRow{
		Code:          company.Code,
		Name:          company.Name,
		ChainCode:     table.Code,
		ChainName:     b.ChainName(table.Code),
		Positions:     positions,
		Subcategories: subcategories.first(MaxSubcategories),
		Upstream:      upstream.first(MaxCounterparts),
		Downstream:    downstream.first(MaxCounterparts),
	}, true
}

// isUpstreamOf reports whether a sits strictly before b in the chain. Rows
// with an unknown position are never counterparts.
func isUpstreamOf(a, b model.Position) bool {
	return a.Valid() && b.Valid() && a.Rank() < b.Rank()
}
