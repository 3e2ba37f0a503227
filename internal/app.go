package internal

import (
	"tripline/internal/cli"
	"tripline/internal/providers"
	"tripline/internal/structures"
)

type App struct {
	Shell *cli.Shell
}

// NewApp runs the interactive shell to completion. The shell owns the whole
// lifetime of the process; when it returns the app is done.
func NewApp(shell *cli.Shell, conf *structures.Config, logger providers.Logger) (*App, error) {
	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)

	app := &App{Shell: shell}
	if err := shell.Run(); err != nil {
		logger.Errorf(providers.TypeApp, "Shell stopped with error: %s", err)
		return nil, err
	}

	logger.Infof(providers.TypeApp, "gracefully stopped")
	logger.Close()
	return app, nil
}
