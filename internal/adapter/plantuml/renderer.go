// Package plantuml invokes the PlantUML engine as an external Java process
// to turn diagram source text into SVG or PNG images.
package plantuml

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

const DefaultTimeout = 30 * time.Second

type RendererOptions struct {
	JavaBin     string
	GraphvizDot string
	Timeout     time.Duration
}

type RendererOptionFunc func(opts *RendererOptions)

func NewRendererOptions(funcs ...RendererOptionFunc) *RendererOptions {
	opts := &RendererOptions{
		JavaBin: "java",
		Timeout: DefaultTimeout,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithJavaBin(javaBin string) RendererOptionFunc {
	return func(opts *RendererOptions) {
		opts.JavaBin = javaBin
	}
}

// WithGraphvizDot pins the Graphviz "dot" binary used by the engine for
// layout. When empty, the engine auto-detects an installation.
func WithGraphvizDot(dot string) RendererOptionFunc {
	return func(opts *RendererOptions) {
		opts.GraphvizDot = dot
	}
}

func WithTimeout(timeout time.Duration) RendererOptionFunc {
	return func(opts *RendererOptions) {
		opts.Timeout = timeout
	}
}

type Renderer struct {
	jarPath     string
	javaBin     string
	graphvizDot string
	timeout     time.Duration
}

// Render implements port.Renderer. The engine is invoked in pipe mode: the
// diagram source goes to stdin, the image comes back on stdout and
// diagnostics on stderr. One invocation per call, no retry.
func (r *Renderer) Render(ctx context.Context, req *model.RenderRequest) (*model.RenderResult, error) {
	if _, err := os.Stat(r.jarPath); err != nil {
		return model.NewRenderFailure(model.FailureInvocation,
			"plantuml jar not found at "+r.jarPath), nil
	}

	if _, err := exec.LookPath(r.javaBin); err != nil {
		return model.NewRenderFailure(model.FailureInvocation,
			"java runtime not found: "+r.javaBin), nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := []string{"-jar", r.jarPath, "-t" + string(req.Format), "-charset", "UTF-8", "-pipe"}
	if r.graphvizDot != "" {
		args = append(args, "-DGRAPHVIZ_DOT="+r.graphvizDot)
	}

	cmd := exec.CommandContext(ctx, r.javaBin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(req.Content)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.DebugContext(ctx, "invoking renderer", slog.String("bin", r.javaBin), slog.Any("args", args))

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return model.NewRenderFailure(model.FailureProcessing,
				"renderer timed out after "+r.timeout.String()), nil
		}

		return model.NewRenderFailure(model.FailureProcessing, diagnostic(stderr.String(), err)), nil
	}

	if stdout.Len() == 0 {
		return model.NewRenderFailure(model.FailureProcessing, diagnostic(stderr.String(), errors.New("renderer produced no output"))), nil
	}

	return model.NewRenderSuccess(stdout.Bytes(), req.Format.ContentType()), nil
}

// diagnostic prefers the renderer's own message over the exec error.
func diagnostic(stderr string, err error) string {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}

	return "renderer error: " + err.Error()
}

func NewRenderer(jarPath string, funcs ...RendererOptionFunc) *Renderer {
	opts := NewRendererOptions(funcs...)

	return &Renderer{
		jarPath:     jarPath,
		javaBin:     opts.JavaBin,
		graphvizDot: opts.GraphvizDot,
		timeout:     opts.Timeout,
	}
}

var _ port.Renderer = &Renderer{}
