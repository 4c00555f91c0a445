package enrich

import (
	"context"

	"github.com/shanehull/icchain/internal/model"
)

// SymbolLookup resolves a company name to a listed symbol. Implementations
// return an error when nothing usable was found.
type SymbolLookup interface {
	Lookup(ctx context.Context, name string) (model.ForeignMapping, error)
}
