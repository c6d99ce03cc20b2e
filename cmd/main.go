package main

import (
	"context"
	"log"
	"os"

	"github.com/descmate/descmate/internal/cli/command/describe"
	"github.com/descmate/descmate/internal/cli/registry"
	cfg "github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/i18n"
	"github.com/descmate/descmate/internal/logger"
	"github.com/descmate/descmate/internal/providers"
	"github.com/descmate/descmate/internal/services"
	"github.com/descmate/descmate/internal/vcs/github"
	"github.com/descmate/descmate/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	debug := os.Getenv("DESCMATE_DEBUG") != ""
	logger.Initialize(debug, true)

	cfgApp := cfg.FromEnv()

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, err
	}

	serviceProvider := func(ctx context.Context, config *cfg.Config) (describe.DescribeService, error) {
		generator, err := providers.NewSummaryGenerator(config)
		if err != nil {
			return nil, err
		}
		vcsClient := github.NewGitHubClient(config.VCSConfig.Owner, config.VCSConfig.Repo, config.VCSConfig.Token)
		return services.NewDescribeService(vcsClient, generator), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)
	if err := registerCommand.Register("describe", describe.NewCommand(serviceProvider)); err != nil {
		return nil, err
	}

	return &cli.Command{
		Name:                  "descmate",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}, nil
}
