package launch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Paintersrp/winapps/internal/constants"
	"github.com/Paintersrp/winapps/internal/search"
)

var (
	// ErrUnknownAction is returned for descriptors whose kind has no handler.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidPath is returned for path payloads that cannot name a file.
	ErrInvalidPath = errors.New("invalid path")
)

// LaunchError reports that the OS refused to open or launch a target.
type LaunchError struct {
	Kind   string
	Target string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s %q: %v", e.Kind, e.Target, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Opener hands a path to the OS default "open" action.
type Opener interface {
	Open(path string) error
}

// AppLauncher starts a packaged application by identifier.
type AppLauncher interface {
	Launch(id string) error
}

// Dispatcher turns an action descriptor back into a single OS action.
// It holds no state between calls.
type Dispatcher struct {
	opener Opener
	apps   AppLauncher
	logger *log.Logger
}

// NewDispatcher builds a dispatcher. A nil apps disables the packaged-app
// kind, so such descriptors are treated as unknown.
func NewDispatcher(logger *log.Logger, opener Opener, apps AppLauncher) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{opener: opener, apps: apps, logger: logger}
}

// Dispatch performs the action encoded in descriptor. Every failure is logged
// before it is returned; nothing is retried.
func (d *Dispatcher) Dispatch(descriptor string) error {
	action, err := search.ParseAction(descriptor)
	if err != nil {
		d.logger.Error("unknown action", "action", descriptor, "err", err)
		return fmt.Errorf("%w: %w", ErrUnknownAction, err)
	}

	switch {
	case action.Kind == constants.ActionPath && d.opener != nil:
		return d.openPath(action.Payload)
	case action.Kind == constants.ActionPackage && d.apps != nil:
		return d.launchApp(action.Payload)
	default:
		d.logger.Error("unknown action", "prefix", action.Kind)
		return fmt.Errorf("%w: prefix %q", ErrUnknownAction, action.Kind)
	}
}

func (d *Dispatcher) openPath(path string) error {
	d.logger.Info("opening file", "path", path)

	if err := validatePath(path); err != nil {
		d.logger.Error("failed to get path", "path", path, "err", err)
		return err
	}

	if err := d.opener.Open(path); err != nil {
		d.logger.Error("failed to open file", "path", path, "err", err)
		return &LaunchError{Kind: constants.ActionPath, Target: path, Err: err}
	}

	d.logger.Info("opened file", "path", path)
	return nil
}

func (d *Dispatcher) launchApp(id string) error {
	d.logger.Info("opening packaged app", "app", id)

	if strings.TrimSpace(id) == "" {
		err := errors.New("empty packaged app identifier")
		d.logger.Error("failed to open packaged app", "err", err)
		return &LaunchError{Kind: constants.ActionPackage, Target: id, Err: err}
	}

	if err := d.apps.Launch(id); err != nil {
		d.logger.Error("failed to open packaged app", "app", id, "err", err)
		return &LaunchError{Kind: constants.ActionPackage, Target: id, Err: err}
	}

	d.logger.Info("opened packaged app", "app", id)
	return nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%w: contains NUL", ErrInvalidPath)
	}
	return nil
}
