package main

import (
	"os"

	"dbcheck/internal/adapter/storage"
	"dbcheck/internal/core/ports"

	"github.com/rs/zerolog"
)

var version = "dev"

func main() {
	os.Exit(execute(os.Args[1:], env{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		environ: os.Environ(),
		dir:     ".",
		connector: func(log zerolog.Logger) ports.Connector {
			return storage.NewDefaultRegistry(log)
		},
	}))
}
