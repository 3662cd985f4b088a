package plantuml

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
)

const probeTimeout = 5 * time.Second

// Common installation paths of the Graphviz "dot" binary, probed in order.
var dotCandidates = []string{
	"/opt/homebrew/bin/dot",
	"/usr/local/bin/dot",
	"/usr/bin/dot",
}

// CheckReadiness implements port.ReadinessChecker. It probes each renderer
// prerequisite and reports a composite status for diagnostics; a missing
// prerequisite never prevents a render attempt.
func (r *Renderer) CheckReadiness(ctx context.Context) (*model.Readiness, error) {
	readiness := &model.Readiness{
		Graphviz: []model.GraphvizInstallation{},
	}

	if _, err := os.Stat(r.jarPath); err == nil {
		readiness.ArtifactAvailable = true
	}

	readiness.RuntimeAvailable = r.probeJava(ctx)

	seen := map[string]struct{}{}

	for _, path := range dotCandidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		if version, ok := probeDot(ctx, path); ok {
			readiness.Graphviz = append(readiness.Graphviz, model.GraphvizInstallation{
				Path:    path,
				Type:    installType(path),
				Version: version,
			})
			seen[path] = struct{}{}
		}
	}

	if path, err := exec.LookPath("dot"); err == nil {
		if _, already := seen[path]; !already {
			if version, ok := probeDot(ctx, path); ok {
				readiness.Graphviz = append(readiness.Graphviz, model.GraphvizInstallation{
					Path:    path,
					Type:    "PATH",
					Version: version,
				})
			}
		}
	}

	return readiness, nil
}

func (r *Renderer) probeJava(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	return exec.CommandContext(ctx, r.javaBin, "-version").Run() == nil
}

// probeDot runs "dot -V"; Graphviz prints its version on stderr.
func probeDot(ctx context.Context, path string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, path, "-V")
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", false
	}

	version := strings.TrimSpace(stderr.String())
	if version == "" {
		version = "unknown"
	}

	return version, true
}

func installType(path string) string {
	if strings.Contains(path, "/homebrew/") {
		return "Homebrew"
	}

	return "System"
}

var _ port.ReadinessChecker = &Renderer{}
