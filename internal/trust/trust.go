// Package trust establishes passwordless SSH access to the deploy target.
// A quick batch-mode probe decides whether anything needs doing; when it
// fails, a per-target ed25519 key is generated (once) and installed with
// ssh-copy-id, the single step that may ask the user for a password.
package trust

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"

	"github.com/crossdeploy/crossdeploy/internal/errors"
	"github.com/crossdeploy/crossdeploy/internal/exec"
	"github.com/crossdeploy/crossdeploy/internal/ui"
)

// Bootstrapper ensures the local machine can reach a target without
// password prompts.
type Bootstrapper struct {
	Runner exec.Runner
	Steps  *ui.StepDisplay

	// Version is embedded in the comment of any key it generates.
	Version string
}

// Ensure probes connectivity to user@host and, when the probe fails, sets up
// key-based access. The key lives at
// <home>/.ssh/id_ed25519_<user>_<sanitized host> and is reused on later runs.
func (b *Bootstrapper) Ensure(host, user string) error {
	conn := user + "@" + host

	spin := ui.NewSpinner(b.Steps.Writer(), "Checking SSH connectivity")
	spin.Start()

	probeErr := b.Runner.RunQuiet("ssh",
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=5",
		conn, "echo connected")
	if probeErr == nil {
		spin.Success()
		return nil
	}
	spin.Fail()

	b.Steps.Plain(fmt.Sprintf("No SSH key configured for %s.", conn))

	home, err := os.UserHomeDir()
	if err != nil {
		return errors.Wrap(err, errors.ErrHomeDir,
			"Cannot locate '$HOME/.ssh/' on your machine",
			"Set the HOME environment variable")
	}

	keyPath := filepath.Join(home, ".ssh",
		fmt.Sprintf("id_ed25519_%s_%s", user, SanitizeHostname(host)))

	if _, err := os.Stat(keyPath); err != nil {
		b.Steps.Plain("No SSH key found on your machine. Generating one...")

		if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
			return errors.Wrap(err, errors.ErrKeyGen,
				"Failed to create the .ssh directory",
				"Check permissions on your home directory")
		}

		comment := fmt.Sprintf("Key generated by crossdeploy, Version: %s", b.Version)
		err := b.Runner.Run("ssh-keygen",
			"-t", "ed25519",
			"-f", keyPath,
			"-N", "",
			"-C", comment)
		if err != nil {
			return errors.Wrap(err, errors.ErrKeyGen,
				"SSH key generation failed",
				"Ensure ssh-keygen is installed and accessible")
		}
	}

	b.Steps.Plain(installLine(conn, keyPath))

	if err := b.Runner.Run("ssh-copy-id", "-i", keyPath, conn); err != nil {
		return errors.Wrap(err, errors.ErrKeyInstall,
			"ssh-copy-id failed",
			"Try manually: ssh-copy-id -i "+keyPath+" "+conn)
	}

	return nil
}

// installLine includes the key fingerprint when the public key is readable.
func installLine(conn, keyPath string) string {
	if fp := Fingerprint(keyPath + ".pub"); fp != "" {
		return fmt.Sprintf("Installing key on %s (%s)...", conn, fp)
	}
	return fmt.Sprintf("Installing key on %s...", conn)
}

// Fingerprint returns the SHA256 fingerprint of the public key at pubPath,
// or "" when the file is missing or not a valid key.
func Fingerprint(pubPath string) string {
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return ""
	}

	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return ""
	}

	return ssh.FingerprintSHA256(pub)
}
