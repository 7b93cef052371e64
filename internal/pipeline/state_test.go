package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{StateStart, StateInputsLoaded, true},
		{StateStart, StateAborted, true},
		{StateStart, StateResumeGenerated, false},
		{StateInputsLoaded, StateResumeGenerated, true},
		{StateResumeGenerated, StateResumePersisted, true},
		{StateResumeGenerated, StateFeedbackGenerated, false},
		{StateResumePersisted, StateFeedbackGenerated, true},
		{StateFeedbackGenerated, StateFeedbackPersisted, true},
		{StateFeedbackPersisted, StateDone, true},
		{StateFeedbackPersisted, StateAborted, true},
		{StateDone, StateAborted, false},
		{StateAborted, StateAborted, false},
		{StateAborted, StateInputsLoaded, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestState_Terminal(t *testing.T) {
	assert.True(t, StateDone.Terminal())
	assert.True(t, StateAborted.Terminal())
	assert.False(t, StateStart.Terminal())
	assert.False(t, StateFeedbackPersisted.Terminal())
}
