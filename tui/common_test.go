package tui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHelpers(t *testing.T) {
	InitCommonStyles(&bytes.Buffer{})

	assert.Empty(t, RenderInfo(""))
	assert.Empty(t, RenderSuccessSimple(""))
	assert.Empty(t, RenderError(nil))

	assert.Contains(t, RenderInfo("Downloading"), "Downloading")
	assert.Contains(t, RenderSuccess("done"), "✓ Success: done")
	assert.Contains(t, RenderWarningSimple("new terminal"), "⚠ new terminal")
	assert.Contains(t, RenderError(errors.New("download failed")), "✗ Error: download failed")
	assert.Contains(t, RenderKeyValue("Version", "7.01"), "7.01")
}

func TestRunBusyWithoutTerminalRunsDirectly(t *testing.T) {
	var out bytes.Buffer
	called := false

	err := RunBusy(&out, "Extracting", func() error {
		called = true
		return errors.New("exit 3")
	})

	assert.True(t, called)
	assert.EqualError(t, err, "exit 3")
	assert.Empty(t, out.String())
}
