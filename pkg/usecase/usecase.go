package usecase

import (
	"context"

	"github.com/secmon-lab/hooksync/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
	notify  EventFunc
}

type Option func(*UseCase)

// WithEventFunc installs an observer for progress events. The usecase
// never prints; the caller decides how to render events.
func WithEventFunc(fn EventFunc) Option {
	return func(x *UseCase) {
		x.notify = fn
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}

func (x *UseCase) emit(ctx context.Context, ev *Event) {
	if x.notify != nil {
		x.notify(ctx, ev)
	}
}
