package service

import (
	"github.com/rs/xid"

	"github.com/bianlab/landscape/internal/core/model"
)

// RenderState is the lifecycle state of a single render operation.
type RenderState string

const (
	StateIdle       RenderState = "idle"
	StateBuilding   RenderState = "building"
	StateSubmitting RenderState = "submitting"
	StateSucceeded  RenderState = "succeeded"
	StateFailed     RenderState = "failed"
)

// RenderSession owns the selection and lifecycle state of one render
// operation. Sessions are request-scoped: a new render is a fresh session,
// never a resumption, and there is no retry transition out of a terminal
// state.
type RenderSession struct {
	id        string
	selection *model.Selection
	state     RenderState
}

func NewRenderSession(ids ...model.DocumentID) *RenderSession {
	return &RenderSession{
		id:        xid.New().String(),
		selection: model.NewSelection(ids...),
		state:     StateIdle,
	}
}

func (s *RenderSession) ID() string {
	return s.id
}

func (s *RenderSession) Selection() *model.Selection {
	return s.selection
}

func (s *RenderSession) Select(id model.DocumentID) {
	s.selection.Add(id)
}

func (s *RenderSession) State() RenderState {
	return s.state
}

func (s *RenderSession) transition(state RenderState) {
	// terminal states stick
	if s.state == StateSucceeded || s.state == StateFailed {
		return
	}
	s.state = state
}
