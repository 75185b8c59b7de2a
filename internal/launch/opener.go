package launch

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/Paintersrp/winapps/internal/packages"
)

// SystemOpener opens paths with the platform's default handler.
type SystemOpener struct {
	GOOS  string
	Start func(cmd *exec.Cmd) error
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{GOOS: runtime.GOOS, Start: startDetached}
}

func (o *SystemOpener) Open(path string) error {
	name, args, err := openCommand(o.GOOS, path)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	start := o.Start
	if start == nil {
		start = startDetached
	}
	return start(cmd)
}

func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// startDetached starts cmd and lets it outlive this process.
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// StartAppsLauncher launches packaged apps by display name through the
// Start-apps list, which maps names to application user model IDs.
type StartAppsLauncher struct {
	Run packages.Runner
}

// NewStartAppsLauncher returns a launcher bound to PowerShell.
func NewStartAppsLauncher() *StartAppsLauncher {
	return &StartAppsLauncher{Run: packages.ExecRunner}
}

func (l *StartAppsLauncher) Launch(name string) error {
	run := l.Run
	if run == nil {
		run = packages.ExecRunner
	}
	_, err := run("powershell.exe", "-NoProfile", "-NonInteractive", "-Command", startAppScript(name))
	return err
}

// quoteLiteral wraps s in a single-quoted PowerShell literal. PowerShell
// treats the typographic single quotes as delimiters too, so each of them is
// doubled like the ASCII one.
func quoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\u2018', '\u2019', '\u201A', '\u201B':
			b.WriteRune(r)
		}
		b.WriteRune(r)
	}
	b.WriteByte('\'')
	return b.String()
}

func startAppScript(name string) string {
	quoted := quoteLiteral(name)
	return fmt.Sprintf(`$app = Get-StartApps | Where-Object { $_.Name -eq %[1]s } | Select-Object -First 1
if (-not $app) { Write-Error ("no start app named " + %[1]s); exit 1 }
Start-Process ("shell:AppsFolder\" + $app.AppID)`, quoted)
}
