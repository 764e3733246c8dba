package workflows

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command

	flagStatuses bool
}

func (c *Command) Synopsis() string {
	return "List workflows or their custom statuses"
}

func (c *Command) Help() string {
	return `Usage: wrike workflows [options]

  List the account's workflows. With -statuses, list the custom statuses of
  all workflows instead, keyed by status id.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workflows", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.BoolVar(
		&c.flagStatuses, "statuses", false,
		"List custom statuses instead of workflows",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Setup()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	defer c.Close()

	ctx, cancel := c.Context()
	defer cancel()

	if c.flagStatuses {
		statuses, err := client.CustomStatuses(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching custom statuses: %v", err))
			return 1
		}

		records := statuses.Values()
		t := base.RecordTable(records,
			base.Col("ID", "id"),
			base.Col("Name", "name"),
			base.Col("Group", "group"),
			base.Col("Color", "color"),
		)
		if err := c.Render(records, t); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		return 0
	}

	workflows, err := client.Workflows(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching workflows: %v", err))
		return 1
	}

	records := workflows.Values()
	t, err := workflowTable(records)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if err := c.Render(records, t); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return 0
}

func workflowTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Name", "Standard", "Statuses"},
		Aligns:  []base.Alignment{base.AlignLeft, base.AlignLeft, base.AlignLeft, base.AlignRight},
	}

	for _, r := range records {
		var wf wrike.Workflow
		if err := r.Decode(&wf); err != nil {
			return nil, fmt.Errorf("error decoding workflow: %w", err)
		}
		t.Rows = append(t.Rows, []string{
			wf.ID,
			wf.Name,
			strconv.FormatBool(wf.Standard),
			strconv.Itoa(len(wf.CustomStatuses)),
		})
	}

	return t, nil
}
