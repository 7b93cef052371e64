package pipeline

// State is a position in the generation state machine
type State string

// States of a run, in the order a successful run visits them.
const (
	StateStart             State = "START"
	StateInputsLoaded      State = "INPUTS_LOADED"
	StateResumeGenerated   State = "RESUME_GENERATED"
	StateResumePersisted   State = "RESUME_PERSISTED"
	StateFeedbackGenerated State = "FEEDBACK_GENERATED"
	StateFeedbackPersisted State = "FEEDBACK_PERSISTED"
	StateDone              State = "DONE"
	StateAborted           State = "ABORTED"
)

// transitions lists the legal successors of each state. Any state may also abort.
var transitions = map[State]State{
	StateStart:             StateInputsLoaded,
	StateInputsLoaded:      StateResumeGenerated,
	StateResumeGenerated:   StateResumePersisted,
	StateResumePersisted:   StateFeedbackGenerated,
	StateFeedbackGenerated: StateFeedbackPersisted,
	StateFeedbackPersisted: StateDone,
}

// CanTransition reports whether a run may move from one state to another.
func CanTransition(from, to State) bool {
	if to == StateAborted {
		return from != StateDone && from != StateAborted
	}
	return transitions[from] == to
}

// Terminal reports whether no further transitions are possible
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}
