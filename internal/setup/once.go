package setup

import (
	"context"
	"sync"

	"github.com/bianlab/landscape/internal/config"
)

// createFromConfigOnce wraps a constructor so that every call site shares
// the same instance.
func createFromConfigOnce[T any](fn func(ctx context.Context, conf *config.Config) (T, error)) func(ctx context.Context, conf *config.Config) (T, error) {
	var (
		once  sync.Once
		value T
		err   error
	)

	return func(ctx context.Context, conf *config.Config) (T, error) {
		once.Do(func() {
			value, err = fn(ctx, conf)
		})

		return value, err
	}
}
