package model

// GraphvizInstallation describes one discovered Graphviz "dot" binary.
type GraphvizInstallation struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Version string `json:"version"`
}

// Readiness is the composite status of the renderer prerequisites. It is
// reported for diagnostics only and never gates a render.
type Readiness struct {
	RuntimeAvailable  bool                   `json:"runtime_available"`
	ArtifactAvailable bool                   `json:"artifact_available"`
	Graphviz          []GraphvizInstallation `json:"graphviz_installations"`
}

func (r *Readiness) GraphvizAvailable() bool {
	return len(r.Graphviz) > 0
}

// Ready reports whether every prerequisite of the renderer is present.
func (r *Readiness) Ready() bool {
	return r.RuntimeAvailable && r.ArtifactAvailable && r.GraphvizAvailable()
}
