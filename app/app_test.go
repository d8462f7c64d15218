package app

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/pasteboard/clipboard"
)

type fakeShell struct {
	quit, hide, hideOthers int
}

func (s *fakeShell) Quit()       { s.quit++ }
func (s *fakeShell) Hide()       { s.hide++ }
func (s *fakeShell) HideOthers() { s.hideOthers++ }

func newTestApp(t *testing.T) (*Application, *fakeShell, *clipboard.Memory) {
	t.Helper()
	mem := clipboard.NewMemory()
	shell := &fakeShell{}
	sys := clipboard.New(clipboard.WithPort(mem), clipboard.WithLogger(slog.New(slog.DiscardHandler)))
	return New(WithShell(shell), WithClipboard(sys)), shell, mem
}

func TestShellForwarding(t *testing.T) {
	a, shell, _ := newTestApp(t)
	a.Quit()
	a.Hide()
	a.Hide()
	a.HideOthers()
	assert.Equal(t, 1, shell.quit)
	assert.Equal(t, 2, shell.hide)
	assert.Equal(t, 1, shell.hideOthers)
}

func TestClipboardForwarding(t *testing.T) {
	a, _, _ := newTestApp(t)
	_, ok := a.GetClipboardContents()
	assert.False(t, ok)

	a.SetClipboardContents(clipboard.TextItem("hello"))
	item, ok := a.GetClipboardContents()
	require.True(t, ok)
	text, _ := item.Text()
	assert.Equal(t, "hello", text)

	s, ok := a.Clipboard().StringValue()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestSetClipboardContentsWhileBusy(t *testing.T) {
	a, _, mem := newTestApp(t)
	a.SetClipboardContents(clipboard.TextItem("first"))
	mem.SetBusy(true)
	a.SetClipboardContents(clipboard.TextItem("second"))
	mem.SetBusy(false)

	s, ok := a.Clipboard().StringValue()
	require.True(t, ok)
	assert.Equal(t, "first", s)
}

type fakeLoop struct{ requests int }

func (l *fakeLoop) RequestQuit() { l.requests++ }

func TestNewWithOptions(t *testing.T) {
	loop := &fakeLoop{}
	a := New(
		WithRunLoop(loop),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithClipboard(clipboard.New(clipboard.WithPort(clipboard.NewMemory()))),
	)
	require.NotNil(t, a)
	a.SetClipboardContents(clipboard.TextItem("x"))
	s, ok := a.Clipboard().StringValue()
	require.True(t, ok)
	assert.Equal(t, "x", s)
	assert.Zero(t, loop.requests)
}
