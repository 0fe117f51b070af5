// Package remote prepares the destination on the target machine and copies
// the built binary to it.
package remote

import (
	"github.com/crossdeploy/crossdeploy/internal/errors"
	"github.com/crossdeploy/crossdeploy/internal/exec"
	"github.com/crossdeploy/crossdeploy/internal/util"
)

// EnsureDir creates dir on the remote when it is missing. The ssh session
// keeps the terminal so a first-contact host key confirmation can reach the
// user. Connectivity and permission failures surface the same way, as a
// provisioning error.
func EnsureDir(r exec.Runner, host, user, dir string) error {
	conn := user + "@" + host

	if err := r.Run("ssh", conn, "mkdir -p "+util.ShellQuote(dir)); err != nil {
		return errors.Wrap(err, errors.ErrProvision,
			"Failed to create remote directory",
			"Check the SSH connection and that "+user+" can write "+dir)
	}

	return nil
}

// Copy pushes the binary at localPath to conn:dir with scp. Transfer
// progress is suppressed; scp's own diagnostics still reach the terminal
// through stderr.
func Copy(r exec.Runner, localPath, host, user, dir string) error {
	conn := user + "@" + host

	if _, err := r.Output("scp", localPath, conn+":"+dir); err != nil {
		return errors.Wrap(err, errors.ErrTransfer,
			"SCP file transfer failed",
			"Check your connection to "+host)
	}

	return nil
}
