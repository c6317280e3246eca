package testutils

import (
	"log"
	"strings"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

type Logs struct {
	Builder strings.Builder
}

func NewLogs() (*Logs, *log.Logger) {
	logs := &Logs{}
	return logs, log.New(&logs.Builder, "test logger: ", 0)
}

func (tl *Logs) AssertContains(t *testing.T, message string) {
	t.Helper()
	assert.Assert(t, is.Contains(tl.Builder.String(), message))
}

func (tl *Logs) AssertDoesNotContain(t *testing.T, message string) {
	t.Helper()
	logged := tl.Builder.String()
	if strings.Contains(logged, message) {
		t.Errorf("logs unexpectedly contain %q:\n%s", message, logged)
	}
}

func (tl *Logs) Logs() string {
	return tl.Builder.String()
}
