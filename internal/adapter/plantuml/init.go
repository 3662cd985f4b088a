package plantuml

import (
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/setup"
)

func init() {
	setup.Renderer.Register("plantuml", func(u *url.URL) (port.Renderer, error) {
		jarPath := u.Host + "/" + strings.TrimPrefix(u.Path, "/")

		funcs := []RendererOptionFunc{}

		query := u.Query()

		if javaBin := query.Get("java"); javaBin != "" {
			funcs = append(funcs, WithJavaBin(javaBin))
		}

		if dot := query.Get("dot"); dot != "" {
			funcs = append(funcs, WithGraphvizDot(dot))
		}

		if rawTimeout := query.Get("timeout"); rawTimeout != "" {
			timeout, err := time.ParseDuration(rawTimeout)
			if err != nil {
				return nil, errors.Wrapf(err, "could not parse timeout '%s'", rawTimeout)
			}

			funcs = append(funcs, WithTimeout(timeout))
		}

		return NewRenderer(jarPath, funcs...), nil
	})
}
