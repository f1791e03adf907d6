package packages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftHappyPath(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, DraftIdle, d.Status())

	require.NoError(t, d.To(DraftValidating))
	require.NoError(t, d.To(DraftSubmitting))
	require.NoError(t, d.To(DraftSaved))
	require.NoError(t, d.To(DraftIdle))
}

func TestDraftRejectionPaths(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.To(DraftValidating))
	require.NoError(t, d.To(DraftRejected))

	// a rejected draft can be resubmitted or abandoned
	require.NoError(t, d.To(DraftValidating))
	require.NoError(t, d.To(DraftSubmitting))
	require.NoError(t, d.To(DraftRejected))
	require.NoError(t, d.To(DraftIdle))
}

func TestDraftInvalidTransitions(t *testing.T) {
	tests := []struct {
		from DraftStatus
		to   DraftStatus
	}{
		{DraftIdle, DraftSubmitting},
		{DraftIdle, DraftSaved},
		{DraftIdle, DraftRejected},
		{DraftValidating, DraftSaved},
		{DraftValidating, DraftIdle},
		{DraftSubmitting, DraftValidating},
		{DraftSaved, DraftSubmitting},
		{DraftSaved, DraftRejected},
		{DraftRejected, DraftSaved},
		{DraftRejected, DraftSubmitting},
	}

	for _, tt := range tests {
		d := &Draft{status: tt.from}
		err := d.To(tt.to)
		assert.Error(t, err, "expected %s -> %s to be rejected", tt.from, tt.to)
		assert.Equal(t, tt.from, d.Status(), "failed transition must not change state")
	}
}
