package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMode_Matches(t *testing.T) {
	open := Item{ID: 0, Title: "open"}
	done := Item{ID: 1, Title: "done", Completed: true}

	tests := []struct {
		mode     FilterMode
		open     bool
		done     bool
		str      string
		fragment string
	}{
		{All, true, true, "all", "#/"},
		{Active, true, false, "active", "#/active"},
		{Completed, false, true, "completed", "#/completed"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.open, tt.mode.Matches(open))
			assert.Equal(t, tt.done, tt.mode.Matches(done))
			assert.Equal(t, tt.str, tt.mode.String())
			assert.Equal(t, tt.fragment, tt.mode.Fragment())
		})
	}
}

func TestFilterMode_Next(t *testing.T) {
	assert.Equal(t, Active, All.Next())
	assert.Equal(t, Completed, Active.Next())
	assert.Equal(t, All, Completed.Next())
}
