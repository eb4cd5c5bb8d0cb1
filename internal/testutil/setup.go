package testutil

import (
	"testing"
)

// SetupRecorder returns a Recorder and a destroyer bound to it.
//
// Example:
//
//	rec, d := testutil.SetupRecorder[testutil.Shape](t)
//	r := valueptr.NewWithDestroyer[testutil.Shape](&testutil.Circle{R: 1}, d)
//	r.Drop()
//	require.Equal(t, 1, rec.Len())
func SetupRecorder[P any](t *testing.T) (*Recorder, RecordingDestroyer[P]) {
	t.Helper()
	rec := &Recorder{}
	return rec, RecordingDestroyer[P]{R: rec}
}

// SetupFailingCloner returns a script and a cloner that fails on call failOn.
func SetupFailingCloner[P interface{ Clone() (P, error) }](t *testing.T, failOn int) (*CloneScript, FailingCloner[P]) {
	t.Helper()
	s := &CloneScript{FailOn: failOn}
	return s, FailingCloner[P]{Script: s}
}
