package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/pal/internal/core/house"
	"github.com/colonyops/pal/internal/pal"
	"github.com/colonyops/pal/pkg/iojson"
)

// HouseCmd manages tracked properties and their utility providers.
type HouseCmd struct {
	flags *Flags
	app   *pal.App

	// flags
	utilities  []string
	jsonOutput bool
}

// NewHouseCmd creates a new house command
func NewHouseCmd(flags *Flags, app *pal.App) *HouseCmd {
	return &HouseCmd{flags: flags, app: app}
}

// Register adds the house command to the application
func (cmd *HouseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "house",
		Usage:     "Manage properties",
		UsageText: "pal house <command>",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a property",
				UsageText: "pal house add [--utility service=provider ...] <address...>",
				Description: `Tracks a property. Utilities are attached with repeated
--utility flags, e.g. --utility electric="city power".`,
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:        "utility",
						Usage:       "utility in service=provider form (repeatable)",
						Destination: &cmd.utilities,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "ls",
				Usage:     "List properties",
				UsageText: "pal house ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
		},
	})

	return app
}

func (cmd *HouseCmd) runAdd(ctx context.Context, c *cli.Command) error {
	address := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if address == "" {
		return fmt.Errorf("house address is required")
	}

	var utilities []house.Utility
	for _, raw := range cmd.utilities {
		service, provider, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid utility %q, expected service=provider", raw)
		}
		utilities = append(utilities, house.Utility{
			Service:  strings.TrimSpace(service),
			Provider: strings.TrimSpace(provider),
		})
	}

	h := house.House{Address: address, Utilities: utilities}
	if err := cmd.app.Stores.Houses.Create(ctx, &h); err != nil {
		return fmt.Errorf("create house: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added house %s: %s\n", h.ID, h.Address)
	return nil
}

func (cmd *HouseCmd) runLs(ctx context.Context, c *cli.Command) error {
	houses, err := cmd.app.Stores.Houses.List(ctx)
	if err != nil {
		return fmt.Errorf("list houses: %w", err)
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, h := range houses {
			if err := iojson.WriteLine(out, h); err != nil {
				return fmt.Errorf("encode house: %w", err)
			}
		}
		return nil
	}

	if len(houses) == 0 {
		fmt.Fprintln(out, "No houses found")
		return nil
	}

	for _, h := range houses {
		fmt.Fprintf(out, "%s  %s\n", h.ID, h.Address)
		for _, u := range h.Utilities {
			fmt.Fprintf(out, "    %s: %s\n", u.Service, u.Provider)
		}
	}
	return nil
}
