// Package clipboard copies text to the system clipboard: OSC 52 escape
// sequences first (works over SSH and in modern terminals), then native OS
// commands as a fallback.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Copy copies text to the system clipboard.
func Copy(text string) error {
	if err := copyOSC52(text); err == nil {
		return nil
	}
	return copyNative(text)
}

// copyOSC52 writes the OSC 52 clipboard sequence to the controlling terminal.
// /dev/tty is preferred over stdout so the sequence reaches the terminal even
// when stdout is redirected.
func copyOSC52(text string) error {
	seq := fmt.Sprintf("\033]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))

	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		_, err = fmt.Fprint(os.Stdout, seq)
		return err
	}
	defer tty.Close()

	_, err = fmt.Fprint(tty, seq)
	return err
}

// copyNative pipes text into the platform clipboard command: pbcopy on
// macOS, xclip/xsel/wl-copy on Linux, clip.exe on Windows.
func copyNative(text string) error {
	cmd, args := nativeCommand()
	if cmd == "" {
		return fmt.Errorf("clipboard: no native clipboard command for %s", runtime.GOOS)
	}

	c := exec.Command(cmd, args...)
	stdin, err := c.StdinPipe()
	if err != nil {
		return fmt.Errorf("clipboard: open stdin pipe: %w", err)
	}
	if err := c.Start(); err != nil {
		return fmt.Errorf("clipboard: start %s: %w", cmd, err)
	}
	if _, err := io.WriteString(stdin, text); err != nil {
		_ = stdin.Close()
		_ = c.Wait()
		return fmt.Errorf("clipboard: write to %s: %w", cmd, err)
	}
	if err := stdin.Close(); err != nil {
		_ = c.Wait()
		return fmt.Errorf("clipboard: close stdin: %w", err)
	}
	if err := c.Wait(); err != nil {
		return fmt.Errorf("clipboard: %s exited: %w", cmd, err)
	}
	return nil
}

func nativeCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "pbcopy", nil
	case "windows":
		return "clip", nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if path, err := exec.LookPath("xclip"); err == nil {
			return path, []string{"-in", "-selection", "clipboard"}
		}
		if path, err := exec.LookPath("xsel"); err == nil {
			return path, []string{"--clipboard", "--input"}
		}
		if path, err := exec.LookPath("wl-copy"); err == nil {
			return path, nil
		}
		return "", nil
	default:
		return "", nil
	}
}
