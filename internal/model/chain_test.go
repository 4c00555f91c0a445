package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionRank(t *testing.T) {
	assert.Less(t, Upstream.Rank(), Midstream.Rank())
	assert.Less(t, Midstream.Rank(), Downstream.Rank())
	assert.False(t, Position("").Valid())
	assert.False(t, Position("上中游").Valid())
}

func TestChainRecordKey(t *testing.T) {
	listed := ChainRecord{SubcategoryCode: "D100", StockCode: "2330", StockName: "台積電"}
	foreign := ChainRecord{SubcategoryCode: "D100", StockName: "輝達"}
	assert.Equal(t, "D100:2330", listed.Key())
	assert.Equal(t, "D100:輝達", foreign.Key())
	assert.True(t, foreign.IsForeign())
	assert.False(t, listed.IsForeign())
}

func TestChains(t *testing.T) {
	assert.Len(t, Chains, 21)
	seen := make(map[string]bool)
	for _, c := range Chains {
		assert.False(t, seen[c.Code], "duplicate chain %s", c.Code)
		seen[c.Code] = true
	}
	assert.Equal(t, "半導體", ChainLabel("D000"))
	assert.Equal(t, "Q123", ChainLabel("Q123"))
}

func TestWatchlistEntryValid(t *testing.T) {
	assert.True(t, WatchlistEntry{Code: "1101"}.Valid())
	assert.False(t, WatchlistEntry{Code: SentinelCode}.Valid())
	assert.False(t, WatchlistEntry{}.Valid())
}
