package limiter

import (
	"context"

	"github.com/adrianliechti/briefing/pkg/provider"

	"golang.org/x/time/rate"
)

var _ provider.Completer = (*limitedCompleter)(nil)

type limitedCompleter struct {
	limiter  *rate.Limiter
	provider provider.Completer
}

// NewCompleter waits on l before each call to p. A nil l disables limiting.
func NewCompleter(l *rate.Limiter, p provider.Completer) provider.Completer {
	return &limitedCompleter{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.Complete(ctx, messages, options)
}
