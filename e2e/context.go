package e2e

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

// TestContext drives the built rolodex binary for one scenario. Input
// lines are queued by steps and fed to the process as stdin when a session
// step runs; the snapshot file lives in the scenario's temp dir so every
// scenario starts from an empty book while sessions within a scenario
// share state.
type TestContext struct {
	t        *testing.T
	bin      string
	dataFile string

	queued []string
	output strings.Builder
}

func NewTestContext(t *testing.T, bin string) *TestContext {
	tc := &TestContext{t: t, bin: bin}
	tc.Reset()
	return tc
}

// Reset gives the next scenario a fresh snapshot file and an empty
// transcript.
func (tc *TestContext) Reset() {
	tc.dataFile = tc.t.TempDir() + "/addressbook.json"
	tc.queued = nil
	tc.output.Reset()
}

// QueueInput appends lines to the pending stdin script.
func (tc *TestContext) QueueInput(lines ...string) {
	tc.queued = append(tc.queued, lines...)
}

// RunSession executes one full assistant session with the queued input and
// accumulates its stdout. The queue is consumed; later sessions start
// fresh but reuse the same snapshot file.
func (tc *TestContext) RunSession() error {
	cmd := exec.Command(tc.bin, "--data", tc.dataFile, "--no-color")
	cmd.Stdin = strings.NewReader(strings.Join(tc.queued, "\n") + "\n")
	tc.queued = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	tc.output.WriteString(stdout.String())
	if err != nil {
		return fmt.Errorf("session failed: %w\nstderr: %s", err, stderr.String())
	}
	return nil
}

// Output returns everything the scenario's sessions printed so far.
func (tc *TestContext) Output() string {
	return tc.output.String()
}
