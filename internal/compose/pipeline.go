package compose

import (
	"context"

	"github.com/google/uuid"

	"github.com/webdevwork7/linkedin-zen-post/internal/logutil"
)

// State names a stage of the submission pipeline.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateBuilding
	StateDispatching
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateBuilding:
		return "building"
	case StateDispatching:
		return "dispatching"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Result describes a completed submission attempt.
type Result struct {
	RequestID string
	Payload   Payload
}

// Pipeline drives one submission at a time through
// idle → validating → building → dispatching → {succeeded, failed} → idle.
// A failed validation returns straight to idle without touching the network;
// a successful dispatch resets the post state for the next composition.
type Pipeline struct {
	dispatcher Dispatcher
	nodeID     string

	state State

	// OnTransition, when set, observes every state change.
	OnTransition func(State)
}

// NewPipeline builds a pipeline around the given dispatcher and target node.
func NewPipeline(d Dispatcher, nodeID string) *Pipeline {
	return &Pipeline{dispatcher: d, nodeID: nodeID}
}

// State reports the pipeline's current stage.
func (p *Pipeline) State() State { return p.state }

// Submit validates the state, builds the payload, and performs exactly one
// outbound dispatch. Only one submission may be in flight: Submit refuses to
// start while the pipeline is not idle. On success the post state is fully
// reset, post type included; on any failure it is left untouched so the user
// can correct and resubmit.
func (p *Pipeline) Submit(ctx context.Context, s *PostState) (*Result, error) {
	if p.state != StateIdle {
		return nil, ErrInFlight
	}
	defer p.transition(StateIdle)

	p.transition(StateValidating)
	missing, err := Missing(s)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, ValidationError{Type: s.Type, Missing: missing}
	}

	p.transition(StateBuilding)
	payload, err := Build(s, p.nodeID)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	p.transition(StateDispatching)
	logutil.Debugf("dispatching %s via %s: request_id=%s", s.Type, p.dispatcher.Name(), requestID)
	if err := p.dispatcher.Dispatch(ctx, requestID, payload); err != nil {
		p.transition(StateFailed)
		return nil, err
	}

	p.transition(StateSucceeded)
	s.Reset()
	logutil.Debugf("submission succeeded: request_id=%s", requestID)

	return &Result{RequestID: requestID, Payload: payload}, nil
}

func (p *Pipeline) transition(next State) {
	p.state = next
	if p.OnTransition != nil {
		p.OnTransition(next)
	}
}
