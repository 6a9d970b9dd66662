// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard writes text to the system clipboard with an OSC 52
// escape sent straight to the controlling terminal, which also works
// over SSH. Inside tmux the sequence is wrapped for DCS passthrough
// (tmux allow-passthrough on) and then sent bare as well, for tmux
// set-clipboard setups that forward it themselves.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return nil
		}
		defer tty.Close()

		sequence := osc52.New(text)
		if insideTmux() {
			sequence.Tmux().WriteTo(tty)
		}
		sequence.WriteTo(tty)
		return nil
	}
}

// insideTmux checks TMUX for a local session and TERM for one
// forwarded through SSH.
func insideTmux() bool {
	terminal := os.Getenv("TERM")
	return os.Getenv("TMUX") != "" ||
		strings.HasPrefix(terminal, "tmux") ||
		strings.HasPrefix(terminal, "screen")
}
