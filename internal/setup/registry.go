package setup

import (
	"net/url"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/port"
)

var ErrSchemeNotRegistered = errors.New("scheme not registered")

// Registry maps URI schemes to adapter factories so that adapters can
// register themselves from their init functions.
type Registry[T any] struct {
	factories map[string]Factory[T]
}

type Factory[T any] func(u *url.URL) (T, error)

func (r *Registry[T]) Register(scheme string, factory Factory[T]) {
	r.factories[scheme] = factory
}

func (r *Registry[T]) From(dsn string) (T, error) {
	var empty T

	u, err := url.Parse(dsn)
	if err != nil {
		return empty, errors.WithStack(err)
	}

	factory, exists := r.factories[u.Scheme]
	if !exists {
		return empty, errors.Wrapf(ErrSchemeNotRegistered, "no factory associated with scheme '%s'", u.Scheme)
	}

	value, err := factory(u)
	if err != nil {
		return empty, errors.WithStack(err)
	}

	return value, nil
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T], 0),
	}
}

var Renderer = NewRegistry[port.Renderer]()
