package enrich

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/shanehull/icchain/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubLookup answers from a fixed table and records every name asked.
type stubLookup struct {
	answers map[string]model.ForeignMapping
	err     error
	asked   []string
}

func (s *stubLookup) Lookup(_ context.Context, name string) (model.ForeignMapping, error) {
	s.asked = append(s.asked, name)
	if s.err != nil {
		return model.ForeignMapping{}, s.err
	}
	m, ok := s.answers[name]
	if !ok {
		return model.ForeignMapping{}, ErrNoQuote
	}
	return m, nil
}

func TestKnownMappings(t *testing.T) {
	known := KnownMappings()
	assert.GreaterOrEqual(t, known.Len(), 120)

	m, ok := known.Get("Google")
	require.True(t, ok)
	assert.Equal(t, model.ForeignMapping{Name: "Google", Symbol: "GOOGL", Exchange: "NASDAQ"}, m)

	m, ok = known.Get("Splunk")
	require.True(t, ok)
	assert.True(t, m.Acquired())
	assert.False(t, m.Resolved())

	_, ok = known.Get("不存在的公司")
	assert.False(t, ok)
}

func TestResolve_KnownTableWins(t *testing.T) {
	lookup := &stubLookup{answers: map[string]model.ForeignMapping{
		"Google": {Symbol: "GOOG", Exchange: "NMS"},
	}}
	prior := map[string]model.ForeignMapping{
		"Google": {Name: "Google", Symbol: "WRONG", Exchange: "OTC"},
	}
	r := NewReconciler(KnownMappings(), lookup, discardLogger())

	m, src := r.Resolve(context.Background(), "Google", prior)
	assert.Equal(t, SourceKnown, src)
	assert.Equal(t, "GOOGL", m.Symbol)
	assert.Equal(t, "NASDAQ", m.Exchange)
	assert.Empty(t, lookup.asked)
}

func TestResolve_GoogleWithoutPriorMapping(t *testing.T) {
	r := NewReconciler(KnownMappings(), nil, discardLogger())
	m, src := r.Resolve(context.Background(), "Google", nil)
	assert.Equal(t, SourceKnown, src)
	assert.Equal(t, model.ForeignMapping{Name: "Google", Symbol: "GOOGL", Exchange: "NASDAQ"}, m)
}

func TestResolve_PriorThenLookup(t *testing.T) {
	lookup := &stubLookup{answers: map[string]model.ForeignMapping{
		"甲公司": {Symbol: "AAA", Exchange: "NYSE"},
		"乙公司": {Symbol: "BBB", Exchange: "NYSE"},
	}}
	prior := map[string]model.ForeignMapping{
		"甲公司": {Name: "甲公司", Symbol: "A1", Exchange: "TSE"},
		"丙公司": {Name: "丙公司", Exchange: model.ExchangePrivate},
		"丁公司": {Name: "丁公司"},
	}
	r := NewReconciler(NewTable(nil), lookup, discardLogger())
	ctx := context.Background()

	m, src := r.Resolve(ctx, "甲公司", prior)
	assert.Equal(t, SourcePrior, src)
	assert.Equal(t, "A1", m.Symbol)

	m, src = r.Resolve(ctx, "丙公司", prior)
	assert.Equal(t, SourcePrior, src)
	assert.True(t, m.Private())

	m, src = r.Resolve(ctx, "乙公司", prior)
	assert.Equal(t, SourceLookup, src)
	assert.Equal(t, model.ForeignMapping{Name: "乙公司", Symbol: "BBB", Exchange: "NYSE"}, m)

	m, src = r.Resolve(ctx, "丁公司", prior)
	assert.Equal(t, SourceNone, src)
	assert.Equal(t, model.ForeignMapping{Name: "丁公司"}, m)

	assert.Equal(t, []string{"乙公司", "丁公司"}, lookup.asked)
}

func TestResolve_LookupFailureIsUnresolved(t *testing.T) {
	lookup := &stubLookup{err: errors.New("connection refused")}
	r := NewReconciler(NewTable(nil), lookup, discardLogger())

	m, src := r.Resolve(context.Background(), "Somebody", nil)
	assert.Equal(t, SourceNone, src)
	assert.True(t, m.Empty())
	assert.Equal(t, "Somebody", m.Name)
}

func TestReconcile_Stats(t *testing.T) {
	lookup := &stubLookup{answers: map[string]model.ForeignMapping{
		"Found": {Symbol: "FND", Exchange: "NASDAQ"},
	}}
	prior := map[string]model.ForeignMapping{
		"Kept": {Name: "Kept", Symbol: "KPT", Exchange: "NYSE"},
	}
	r := NewReconciler(KnownMappings(), lookup, discardLogger())

	names := []string{"Found", "Google", "Kept", "OpenAI", "Splunk", "Unknown"}
	out, stats := r.Reconcile(context.Background(), names, prior)

	require.Len(t, out, len(names))
	for i, name := range names {
		assert.Equal(t, name, out[i].Name)
	}
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 3, stats.Resolved)
	assert.Equal(t, 1, stats.Private)
	assert.Equal(t, 1, stats.Acquired)
	assert.Equal(t, 3, stats.Unresolved)
	assert.Equal(t, 3, stats.BySource[SourceKnown])
	assert.Equal(t, 1, stats.BySource[SourcePrior])
	assert.Equal(t, 1, stats.BySource[SourceLookup])
	assert.Equal(t, 1, stats.BySource[SourceNone])
}
