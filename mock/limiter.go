package mock

import (
	"context"

	"github.com/pbartosik/wolref"
)

var _ wolref.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of wolref.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
