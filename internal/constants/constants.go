package constants

const (
	Version        = `0.1.0`
	AppName        = `winapps`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.winapps/`
	EnvFile        = `.env`
	EnvPrefix      = `WINAPPS`

	DefaultLogLevel = `warn`
)

// Shortcut discovery.
const (
	// LinkExt marks a file as a shortcut candidate. Compared case-insensitively.
	LinkExt = `.lnk`

	// MachineShortcutRoot is the machine-wide start menu.
	MachineShortcutRoot = `C:\ProgramData\Microsoft\Windows\Start Menu`

	// UserRootEnv names the variable holding the per-user application data base.
	UserRootEnv = `APPDATA`

	// UninstallMarker excludes shortcuts whose file name contains it.
	UninstallMarker = `uninstall`

	// MaxWalkDepth and MaxWalkNodes bound a single root's traversal.
	MaxWalkDepth = 64
	MaxWalkNodes = 250_000
)

// UserShortcutSubpath is joined onto the per-user base to reach the user's start menu programs.
var UserShortcutSubpath = []string{"Microsoft", "Windows", "Start Menu", "Programs"}

// Toggle keys of a search configuration.
const (
	IncludePackagedApps = `include_uwp_apps`
	IncludeShortcutApps = `include_start_menu_apps`
	ReturnErrorMessages = `return_error_messages`
)

// Action descriptor kinds.
const (
	ActionPath    = `pth`
	ActionPackage = `uwp`
)
