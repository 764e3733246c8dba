package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/contacts"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/customfields"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/folders"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/ids"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/open"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/status"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/tasks"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/timelogs"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/version"
	"github.com/hashicorp-forge/wrike/internal/cmd/commands/workflows"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"contacts": func() (cli.Command, error) {
			return &contacts.Command{Command: b}, nil
		},
		"customfields": func() (cli.Command, error) {
			return &customfields.Command{Command: b}, nil
		},
		"folders": func() (cli.Command, error) {
			return &folders.Command{Command: b}, nil
		},
		"ids": func() (cli.Command, error) {
			return &ids.Command{Command: b}, nil
		},
		"open": func() (cli.Command, error) {
			return &open.Command{Command: b}, nil
		},
		"status": func() (cli.Command, error) {
			return &status.Command{Command: b}, nil
		},
		"tasks": func() (cli.Command, error) {
			return &tasks.Command{Command: b}, nil
		},
		"timelogs": func() (cli.Command, error) {
			return &timelogs.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
		"workflows": func() (cli.Command, error) {
			return &workflows.Command{Command: b}, nil
		},
	}
}
