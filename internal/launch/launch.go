package launch

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/google/shlex"

	"quicklaunch/internal/store"
)

// CommandLine turns a descriptor Exec value into argv. Freedesktop field
// codes are placeholders for files and URLs the launcher never passes, so
// %f/%F/%u/%U/%i/%c/%k are dropped and %% becomes a literal percent sign.
func CommandLine(execLine string) ([]string, error) {
	args, err := shlex.Split(execLine)
	if err != nil {
		return nil, fmt.Errorf("invalid Exec line %q: %w", execLine, err)
	}

	argv := make([]string, 0, len(args))
	for _, arg := range args {
		arg = expandFieldCodes(arg)
		// Arguments that were nothing but a field code vanish entirely
		if arg == "" {
			continue
		}
		argv = append(argv, arg)
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("Exec line %q has no command", execLine)
	}
	return argv, nil
}

func expandFieldCodes(arg string) string {
	var out strings.Builder
	for i := 0; i < len(arg); i++ {
		if arg[i] != '%' || i+1 >= len(arg) {
			out.WriteByte(arg[i])
			continue
		}
		i++
		switch arg[i] {
		case '%':
			out.WriteByte('%')
		default:
			// No file or URL to substitute; every other code is dropped
		}
	}
	return out.String()
}

// Command builds the *exec.Cmd for an entry without starting it.
func Command(e *store.Entry) (*exec.Cmd, error) {
	argv, err := CommandLine(e.Exec)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	// Detach: the launched application must outlive the launcher
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd, nil
}

// Start launches the entry's executable detached from the launcher. It
// returns once the process has been started; the launcher never waits for
// it.
func Start(e *store.Entry) error {
	cmd, err := Command(e)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", e.Name, err)
	}
	// Reap the child in the background so it doesn't linger as a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}
