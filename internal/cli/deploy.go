package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/crossdeploy/crossdeploy/internal/build"
	"github.com/crossdeploy/crossdeploy/internal/config"
	"github.com/crossdeploy/crossdeploy/internal/errors"
	"github.com/crossdeploy/crossdeploy/internal/exec"
	"github.com/crossdeploy/crossdeploy/internal/remote"
	"github.com/crossdeploy/crossdeploy/internal/trust"
	"github.com/crossdeploy/crossdeploy/internal/ui"
)

// DeployOptions configures a single deploy run.
type DeployOptions struct {
	// Release selects the cargo profile. The default build is release;
	// the --debug flag flips this off.
	Release bool

	// Dir is the project directory holding cargo_deploy.json. Empty means
	// the current directory.
	Dir string

	// Runner, Prompter, and Out are seams for tests. Nil selects the real
	// subprocess runner, the interactive form, and stdout.
	Runner   exec.Runner
	Prompter Prompter
	Out      io.Writer
}

func (o *DeployOptions) runner() exec.Runner {
	if o.Runner != nil {
		return o.Runner
	}
	return exec.NewSystem()
}

func (o *DeployOptions) prompter() Prompter {
	if o.Prompter != nil {
		return o.Prompter
	}
	return defaultPrompter()
}

func (o *DeployOptions) out() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return os.Stdout
}

// Deploy runs the pipeline end to end: load config, build the binary,
// establish SSH trust, create the remote directory, and upload. Each step
// gates the next; the first failure aborts the run.
func Deploy(opts DeployOptions) error {
	runner := opts.runner()
	steps := ui.NewStepDisplay(opts.out())

	configPath := filepath.Join(opts.Dir, config.FileName)
	cfg, created, err := config.LoadOrCreate(configPath)
	if err != nil {
		return err
	}
	if created {
		steps.Info("Created new deploy config file: " + config.FileName)
	}

	if err := fillMissing(cfg, configPath, opts.prompter()); err != nil {
		return err
	}

	arch := cfg.Arch()
	builder := &build.Builder{Runner: runner}

	steps.Announce(fmt.Sprintf("Building (%s) for %s", build.ProfileDir(opts.Release), arch))
	if err := builder.Build(arch, opts.Release); err != nil {
		return err
	}

	bootstrap := &trust.Bootstrapper{Runner: runner, Steps: steps, Version: Version()}
	if err := bootstrap.Ensure(cfg.Host(), cfg.User()); err != nil {
		return err
	}

	dest := cfg.Dest()
	if err := remote.EnsureDir(runner, cfg.Host(), cfg.User(), dest); err != nil {
		return err
	}

	name, err := builder.ArtifactName()
	if err != nil {
		return err
	}
	binaryPath := build.ArtifactPath(arch, opts.Release, name)

	steps.Announce(fmt.Sprintf("Uploading to %s:%s", cfg.ConnectionString(), dest))
	if err := remote.Copy(runner, binaryPath, cfg.Host(), cfg.User(), dest); err != nil {
		return err
	}

	steps.Done("Deployment complete.")
	return nil
}

// fillMissing prompts for unset connection fields and persists the result.
// Filling in the username also points the destination at that user's bin
// directory, so a fresh config lands somewhere writable.
func fillMissing(cfg *config.Config, path string, p Prompter) error {
	needSave := false

	if cfg.TargetName == nil {
		host, err := promptValue(p, "Enter remote hostname/IP",
			"The device the binary will be deployed to", "raspberrypi.local", "target_name")
		if err != nil {
			return err
		}
		cfg.TargetName = &host
		needSave = true
	}

	if cfg.TargetUser == nil {
		user, err := promptValue(p, "Enter remote username",
			"The login used for SSH and file copies", "raspberry", "target_user")
		if err != nil {
			return err
		}
		cfg.TargetUser = &user
		dest := "/home/" + user + "/bin"
		cfg.TargetDest = &dest
		needSave = true
	}

	if needSave {
		return config.Save(path, cfg)
	}
	return nil
}

func promptValue(p Prompter, title, description, placeholder, field string) (string, error) {
	if p == nil {
		return "", errors.New(errors.ErrConfigRead,
			fmt.Sprintf("%s is not set in %s and no terminal is attached", field, config.FileName),
			fmt.Sprintf("Add %s to %s, or run once in a terminal to be prompted", field, config.FileName))
	}

	value, err := p.Ask(title, description, placeholder)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigRead, "Failed to read user input", "")
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New(errors.ErrConfigRead,
			fmt.Sprintf("Got an empty value for %s", field), "")
	}
	return value, nil
}
