package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// inspectSelected shows the selected entry's raw descriptor file in the ov
// pager. The Bubble Tea program releases the terminal while the pager runs
// and restores it afterwards.
func (m *Model) inspectSelected() tea.Cmd {
	entry := m.selected()
	if entry == nil || entry.Path == "" {
		return nil
	}
	path := entry.Path

	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return pagerDoneMsg{err: fmt.Errorf("reading %s: %w", path, err)}
		}
		return pagerDoneMsg{err: m.showInPager(string(content))}
	}
}

// showInPager runs ov over the given content
func (m *Model) showInPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure the terminal is restored even if ov fails
	defer func() {
		// Small delay so ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write pager output on exit, it would clobber our screen
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
