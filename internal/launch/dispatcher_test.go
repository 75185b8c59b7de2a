package launch

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/winapps/internal/search"
)

type recordingOpener struct {
	paths []string
	err   error
}

func (o *recordingOpener) Open(path string) error {
	o.paths = append(o.paths, path)
	return o.err
}

type recordingApps struct {
	ids []string
	err error
}

func (a *recordingApps) Launch(id string) error {
	a.ids = append(a.ids, id)
	return a.err
}

func newTestDispatcher(apps AppLauncher) (*Dispatcher, *recordingOpener, *bytes.Buffer) {
	var buf bytes.Buffer
	opener := &recordingOpener{}
	return NewDispatcher(log.New(&buf), opener, apps), opener, &buf
}

func TestDispatchPathRoundTripsPayload(t *testing.T) {
	paths := []string{
		`C:\Users\x\App.lnk`,
		`C:\ProgramData\Microsoft\Windows\Start Menu\Programs\Tools: Extra\Tool.lnk`,
		"/home/x/.local/share/menu/a:b.lnk",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			d, opener, _ := newTestDispatcher(nil)

			require.NoError(t, d.Dispatch(search.PathAction(p)))

			assert.Equal(t, []string{p}, opener.paths)
		})
	}
}

func TestDispatchPathLaunchFailure(t *testing.T) {
	d, opener, buf := newTestDispatcher(nil)
	opener.err = errors.New("no handler")

	err := d.Dispatch("pth:/x/App.lnk")

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "/x/App.lnk", launchErr.Target)
	assert.Len(t, opener.paths, 1, "no retry")
	assert.Contains(t, buf.String(), "failed to open file")
}

func TestDispatchPathRejectsInvalidPath(t *testing.T) {
	for _, action := range []string{"pth:", "pth:a\x00b"} {
		d, opener, _ := newTestDispatcher(nil)

		err := d.Dispatch(action)

		assert.ErrorIs(t, err, ErrInvalidPath)
		assert.Empty(t, opener.paths)
	}
}

func TestDispatchPackagedApp(t *testing.T) {
	apps := &recordingApps{}
	d, opener, _ := newTestDispatcher(apps)

	require.NoError(t, d.Dispatch("uwp:Contoso: Notes"))

	assert.Equal(t, []string{"Contoso: Notes"}, apps.ids)
	assert.Empty(t, opener.paths)
}

func TestDispatchPackagedAppFailure(t *testing.T) {
	apps := &recordingApps{err: errors.New("not found")}
	d, _, buf := newTestDispatcher(apps)

	err := d.Dispatch("uwp:Ghost")

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, "uwp", launchErr.Kind)
	assert.Contains(t, buf.String(), "failed to open packaged app")
}

func TestDispatchPackagedAppWithoutCapabilityIsUnknown(t *testing.T) {
	d, opener, buf := newTestDispatcher(nil)

	err := d.Dispatch("uwp:ContosoApp")

	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Empty(t, opener.paths)
	assert.Contains(t, buf.String(), "unknown action")
}

func TestDispatchUnknownOrMalformed(t *testing.T) {
	for _, action := range []string{"zip:/a/b", "notepad", "", ":x", "PTH:/a"} {
		t.Run(action, func(t *testing.T) {
			apps := &recordingApps{}
			d, opener, buf := newTestDispatcher(apps)

			err := d.Dispatch(action)

			assert.ErrorIs(t, err, ErrUnknownAction)
			assert.Empty(t, opener.paths)
			assert.Empty(t, apps.ids)
			assert.Contains(t, buf.String(), "unknown action")
		})
	}
}
