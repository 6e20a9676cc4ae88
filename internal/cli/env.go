package cli

import (
	"io"
	"os"

	"github.com/alnah/go-textclean/internal/config"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Config  *config.Config // base configuration when no config file is given
	Version string
}

// DefaultEnv returns the production environment.
func DefaultEnv(version string) *Environment {
	return &Environment{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  config.DefaultConfig(),
		Version: version,
	}
}
