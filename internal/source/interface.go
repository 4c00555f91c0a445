package source

import (
	"context"

	"github.com/shanehull/icchain/internal/model"
)

// ChainSource fetches one industry page. A nil page with a non-nil error means
// the industry yielded nothing this run.
type ChainSource interface {
	Name() string
	Fetch(ctx context.Context, chain model.Chain) (*ChainPage, error)
}
