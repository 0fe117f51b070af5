package trust

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptossh "golang.org/x/crypto/ssh"

	"github.com/crossdeploy/crossdeploy/internal/errors"
	exectest "github.com/crossdeploy/crossdeploy/internal/exec/testing"
	"github.com/crossdeploy/crossdeploy/internal/ui"
)

func newBootstrapper(fake *exectest.FakeRunner, out *bytes.Buffer) *Bootstrapper {
	return &Bootstrapper{
		Runner:  fake,
		Steps:   ui.NewStepDisplay(out),
		Version: "1.2.3",
	}
}

func TestEnsure_AlreadyTrusted(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fake := exectest.NewFakeRunner()
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.NoError(t, err)

	// A passing probe is the only subprocess the whole step spawns.
	require.Len(t, fake.Calls, 1)
	probe := fake.Calls[0]
	assert.Equal(t, exectest.MethodQuiet, probe.Method)
	assert.Equal(t, "ssh", probe.Name)
	assert.Equal(t, []string{
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=5",
		"alice@pi.local", "echo connected",
	}, probe.Args)

	// No key material appears on disk.
	_, statErr := os.Stat(filepath.Join(home, ".ssh"))
	assert.True(t, os.IsNotExist(statErr))

	assert.Contains(t, out.String(), "Checking SSH connectivity")
}

func TestEnsure_GeneratesAndInstallsKey(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.NoError(t, err)

	keyPath := filepath.Join(home, ".ssh", "id_ed25519_alice_pi_local")

	keygens := fake.CallsTo("ssh-keygen")
	require.Len(t, keygens, 1)
	assert.Equal(t, exectest.MethodRun, keygens[0].Method)
	assert.Equal(t, []string{
		"-t", "ed25519",
		"-f", keyPath,
		"-N", "",
		"-C", "Key generated by crossdeploy, Version: 1.2.3",
	}, keygens[0].Args)

	installs := fake.CallsTo("ssh-copy-id")
	require.Len(t, installs, 1)
	assert.Equal(t, exectest.MethodRun, installs[0].Method)
	assert.Equal(t, []string{"-i", keyPath, "alice@pi.local"}, installs[0].Args)

	// The .ssh directory is created for ssh-keygen with owner-only access.
	info, statErr := os.Stat(filepath.Join(home, ".ssh"))
	require.NoError(t, statErr)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	output := out.String()
	assert.Contains(t, output, "No SSH key configured for alice@pi.local.")
	assert.Contains(t, output, "No SSH key found on your machine. Generating one...")
	assert.Contains(t, output, "Installing key on alice@pi.local")
}

func TestEnsure_ExistingKeySkipsGeneration(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	keyPath := filepath.Join(sshDir, "id_ed25519_alice_pi_local")
	require.NoError(t, os.WriteFile(keyPath, []byte("private key material"), 0o600))

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.NoError(t, err)

	assert.Equal(t, 0, fake.CallCount("ssh-keygen"))
	assert.Equal(t, 1, fake.CallCount("ssh-copy-id"))
	assert.NotContains(t, out.String(), "Generating one")
}

func TestEnsure_FingerprintShownWhenPublicKeyReadable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	sshDir := filepath.Join(home, ".ssh")
	require.NoError(t, os.MkdirAll(sshDir, 0o700))
	keyPath := filepath.Join(sshDir, "id_ed25519_alice_pi_local")
	require.NoError(t, os.WriteFile(keyPath, []byte("private key material"), 0o600))

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sshPub, err := cryptossh.NewPublicKey(pub)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(keyPath+".pub", cryptossh.MarshalAuthorizedKey(sshPub), 0o644))

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	var out bytes.Buffer

	require.NoError(t, newBootstrapper(fake, &out).Ensure("pi.local", "alice"))

	assert.Contains(t, out.String(), cryptossh.FingerprintSHA256(sshPub))
}

func TestEnsure_HomeUnset(t *testing.T) {
	t.Setenv("HOME", "")

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrHomeDir))
}

func TestEnsure_KeygenFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	fake.FailOn("ssh-keygen", fmt.Errorf("exit status 1"))
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrKeyGen))

	// The failure aborts before any install attempt.
	assert.Equal(t, 0, fake.CallCount("ssh-copy-id"))
}

func TestEnsure_InstallFailure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	fake := exectest.NewFakeRunner()
	fake.FailOnMethod(exectest.MethodQuiet, "ssh", fmt.Errorf("exit status 255"))
	fake.FailOn("ssh-copy-id", fmt.Errorf("exit status 1"))
	var out bytes.Buffer

	err := newBootstrapper(fake, &out).Ensure("pi.local", "alice")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrKeyInstall))
}

func TestFingerprint_MissingFile(t *testing.T) {
	assert.Empty(t, Fingerprint(filepath.Join(t.TempDir(), "nope.pub")))
}

func TestFingerprint_InvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pub")
	require.NoError(t, os.WriteFile(path, []byte("not a key at all"), 0o644))

	assert.Empty(t, Fingerprint(path))
}
