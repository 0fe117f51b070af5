package config

// FileName is the deploy config file, looked up in the invocation directory.
const FileName = "cargo_deploy.json"

// Defaults applied when the corresponding field is null or absent.
const (
	DefaultArch = "aarch64-unknown-linux-gnu"
	DefaultDest = "/home/raspberry/bin"
)

// Config represents the cargo_deploy.json deploy configuration. Every field
// is nullable: a null arch or dest falls back to its default at use time
// without being rewritten to disk, while a null name or user is filled by
// prompting and then persisted.
type Config struct {
	// TargetArch is the Rust target triple handed to cross.
	TargetArch *string `json:"target_arch" mapstructure:"target_arch"`

	// TargetDest is the directory on the remote the binary lands in.
	TargetDest *string `json:"target_dest" mapstructure:"target_dest"`

	// TargetName is the remote hostname or IP address.
	TargetName *string `json:"target_name" mapstructure:"target_name"`

	// TargetUser is the remote login user.
	TargetUser *string `json:"target_user" mapstructure:"target_user"`
}

// DefaultConfig returns the record written when no config file exists:
// architecture and destination set, name and user left for prompting.
func DefaultConfig() *Config {
	arch := DefaultArch
	dest := DefaultDest
	return &Config{
		TargetArch: &arch,
		TargetDest: &dest,
	}
}

// Arch returns the target triple, falling back to DefaultArch.
func (c *Config) Arch() string {
	if c.TargetArch == nil {
		return DefaultArch
	}
	return *c.TargetArch
}

// Dest returns the remote destination directory, falling back to DefaultDest.
func (c *Config) Dest() string {
	if c.TargetDest == nil {
		return DefaultDest
	}
	return *c.TargetDest
}

// Host returns the remote hostname, or "" when not yet configured.
func (c *Config) Host() string {
	if c.TargetName == nil {
		return ""
	}
	return *c.TargetName
}

// User returns the remote login user, or "" when not yet configured.
func (c *Config) User() string {
	if c.TargetUser == nil {
		return ""
	}
	return *c.TargetUser
}

// ConnectionString returns user@host for the ssh family of tools. It is
// recomputed on demand and never persisted.
func (c *Config) ConnectionString() string {
	return c.User() + "@" + c.Host()
}
