// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-restaurante/internal/adapter"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/utils"
	"github.com/MKhiriev/go-restaurante/models"
)

type App struct {
	adapter adapter.RestaurantAdapter
	out     io.Writer

	commands map[string]command

	logger *logger.Logger
}

// command is one CLI verb. args excludes the verb itself.
type command struct {
	usage string
	nArgs int
	run   func(ctx context.Context, args []string) (any, error)
}

func NewApp(restaurantAdapter adapter.RestaurantAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if restaurantAdapter == nil {
		return nil, fmt.Errorf("restaurant adapter is nil")
	}

	app := &App{
		adapter: restaurantAdapter,
		out:     out,
		logger:  logger,
	}
	app.commands = map[string]command{
		"list":       {usage: "list", run: app.list},
		"get":        {usage: "get ID", nArgs: 1, run: app.get},
		"create":     {usage: "create NAME ADDRESS CUISINE", nArgs: 3, run: app.create},
		"update":     {usage: "update ID NAME ADDRESS CUISINE", nArgs: 4, run: app.update},
		"delete":     {usage: "delete ID", nArgs: 1, run: app.delete},
		"by-name":    {usage: "by-name TEXT", nArgs: 1, run: app.searchBy(restaurantAdapter.SearchByName)},
		"by-address": {usage: "by-address TEXT", nArgs: 1, run: app.searchBy(restaurantAdapter.SearchByAddress)},
		"by-cuisine": {usage: "by-cuisine TEXT", nArgs: 1, run: app.searchBy(restaurantAdapter.SearchByCuisine)},
		"version":    {usage: "version", run: app.version},
	}

	return app, nil
}

// Run executes args[0] with the remaining operands and prints the result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w; usage:\n%s", ErrNoCommand, a.Usage())
	}

	name, operands := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q; usage:\n%s", ErrUnknownCommand, name, a.Usage())
	}
	if len(operands) != cmd.nArgs {
		return fmt.Errorf("%w: %s", ErrWrongArguments, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Strs("args", operands).Msg("running command")

	result, err := cmd.run(ctx, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if result == nil {
		return nil
	}

	return a.print(result)
}

// Usage lists every command, one per line.
func (a *App) Usage() string {
	lines := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		lines = append(lines, "  "+cmd.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func (a *App) print(v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(a.out, s)
		return err
	}

	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.adapter.List(ctx)
}

func (a *App) get(ctx context.Context, args []string) (any, error) {
	id, err := utils.ParseID(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.Get(ctx, id)
}

func (a *App) create(ctx context.Context, args []string) (any, error) {
	return a.adapter.Create(ctx, restaurantFromArgs(args))
}

func (a *App) update(ctx context.Context, args []string) (any, error) {
	id, err := utils.ParseID(args[0])
	if err != nil {
		return nil, err
	}
	return a.adapter.Update(ctx, id, restaurantFromArgs(args[1:]))
}

func (a *App) delete(ctx context.Context, args []string) (any, error) {
	id, err := utils.ParseID(args[0])
	if err != nil {
		return nil, err
	}
	if err = a.adapter.Delete(ctx, id); err != nil {
		return nil, err
	}
	return fmt.Sprintf("restaurant %d deleted", id), nil
}

func (a *App) version(ctx context.Context, _ []string) (any, error) {
	return a.adapter.Version(ctx)
}

func (a *App) searchBy(find func(ctx context.Context, text string) ([]models.Restaurant, error)) func(context.Context, []string) (any, error) {
	return func(ctx context.Context, args []string) (any, error) {
		return find(ctx, args[0])
	}
}

// restaurantFromArgs reads NAME ADDRESS CUISINE.
func restaurantFromArgs(args []string) models.Restaurant {
	return models.Restaurant{
		Name:        args[0],
		Address:     args[1],
		CuisineType: args[2],
	}
}
