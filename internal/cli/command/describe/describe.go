package describe

import (
	"context"
	"fmt"
	"os"
	"time"

	cfg "github.com/descmate/descmate/internal/config"
	"github.com/descmate/descmate/internal/i18n"
	"github.com/descmate/descmate/internal/logger"
	"github.com/descmate/descmate/internal/models"
	"github.com/descmate/descmate/internal/ui"
	"github.com/descmate/descmate/internal/vcs/github"
	"github.com/urfave/cli/v3"
)

// DescribeService is a minimal interface for testing purposes
type DescribeService interface {
	DescribePR(ctx context.Context, prNumber int, hint string, dryRun bool) (models.DescribeResult, error)
}

// ServiceProvider is a function that returns a DescribeService on demand
type ServiceProvider func(ctx context.Context, config *cfg.Config) (DescribeService, error)

type Command struct {
	provider ServiceProvider
}

func NewCommand(provider ServiceProvider) *Command {
	return &Command{
		provider: provider,
	}
}

func (c *Command) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "describe",
		Aliases: []string{"d"},
		Usage:   t.GetMessage("describe.command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "pr-number",
				Aliases: []string{"n"},
				Usage:   t.GetMessage("describe.pr_number_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: t.GetMessage("describe.repo_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "provider",
				Usage: t.GetMessage("describe.provider_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: t.GetMessage("describe.model_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:    "hint",
				Aliases: []string{"H"},
				Usage:   t.GetMessage("describe.hint_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: t.GetMessage("describe.dry_run_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			start := time.Now()

			prNumber := int(cmd.Int("pr-number"))
			hint := cmd.String("hint")
			dryRun := cmd.Bool("dry-run")

			if repo := cmd.String("repo"); repo != "" {
				config.SetRepository(repo)
			}
			if provider := cmd.String("provider"); provider != "" {
				config.AIConfig.ActiveAI = cfg.AI(provider)
			}
			if model := cmd.String("model"); model != "" {
				config.AIConfig.Model = cfg.Model(model)
			}

			if prNumber == 0 {
				event, err := github.ResolveEventContext()
				if err != nil {
					log.Error("could not resolve the pull request from the CI event",
						"error", err,
						"duration_ms", time.Since(start).Milliseconds())
					ui.HandleAppError(err, t)
					return fmt.Errorf(t.GetMessage("error.describe_failed", 0, nil)+": %w", err)
				}
				prNumber = event.PRNumber
				if config.VCSConfig.Owner == "" || config.VCSConfig.Repo == "" {
					config.VCSConfig.Owner = event.Owner
					config.VCSConfig.Repo = event.Repo
				}
			}

			if err := config.Validate(); err != nil {
				log.Error("invalid configuration",
					"error", err,
					"duration_ms", time.Since(start).Milliseconds())
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.service_creation", 0, nil)+": %w", err)
			}

			log.Info("executing describe command",
				"pr_number", prNumber,
				"repo", config.VCSConfig.Owner+"/"+config.VCSConfig.Repo,
				"provider", string(config.AIConfig.ActiveAI),
				"dry_run", dryRun,
				"has_hint", hint != "")

			service, err := c.provider(ctx, config)
			if err != nil {
				log.Error("failed to create describe service",
					"error", err,
					"duration_ms", time.Since(start).Milliseconds())
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.service_creation", 0, nil)+": %w", err)
			}

			ui.PrintInfo(os.Stdout, t.GetMessage("describe.generating", 0, map[string]interface{}{
				"Number": prNumber,
			}))

			result, err := service.DescribePR(ctx, prNumber, hint, dryRun)
			if err != nil {
				log.Error("failed to describe PR",
					"error", err,
					"pr_number", prNumber,
					"duration_ms", time.Since(start).Milliseconds())
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.describe_failed", 0, nil)+": %w", err)
			}

			if result.HadPriorSection {
				ui.PrintInfo(os.Stdout, t.GetMessage("describe.section_replaced", 0, nil))
			} else {
				ui.PrintInfo(os.Stdout, t.GetMessage("describe.section_appended", 0, nil))
			}

			if dryRun {
				ui.PrintInfo(os.Stdout, t.GetMessage("describe.dry_run_header", 0, nil))
				ui.PrintKeyValue(os.Stdout, "provider", result.Provider)
				fmt.Println()
				fmt.Println(result.Body)
				return nil
			}

			if !result.StatusOK {
				ui.PrintWarning(os.Stdout, t.GetMessage("warning.update_status", 0, map[string]interface{}{
					"Status": result.StatusCode,
				}))
			}

			log.Info("PR description updated",
				"pr_number", prNumber,
				"provider", result.Provider,
				"body_length", result.BodyLength,
				"duration_ms", time.Since(start).Milliseconds())

			ui.PrintSuccess(os.Stdout, t.GetMessage("describe.success", 0, map[string]interface{}{
				"Number": prNumber,
				"Length": result.BodyLength,
			}))

			return nil
		},
	}
}
