package tasks

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command

	flagFolder string
}

func (c *Command) Synopsis() string {
	return "List tasks"
}

func (c *Command) Help() string {
	return `Usage: wrike tasks [options] [id...]

  List tasks visible to the access token, the tasks of one folder, or the
  given task ids. Tasks are never cached.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("tasks", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.StringVar(
		&c.flagFolder, "folder", "",
		"List the tasks of this folder id",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	ids := f.Args()

	if c.flagFolder != "" && len(ids) > 0 {
		c.UI.Error("-folder cannot be combined with task ids")
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

	var resp *wrike.Response
	switch {
	case c.flagFolder != "":
		resp, err = client.QueryTasksInFolder(ctx, c.flagFolder)
	case len(ids) > 0:
		resp, err = client.QueryTasks(ctx, ids)
	default:
		resp, err = client.QueryTasksAll(ctx)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching tasks: %v", err))
		return 1
	}

	t, err := taskTable(resp.Data)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if err := c.Render(resp.Data, t); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return 0
}

func taskTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Title", "Status", "Importance", "Due", "Assignees"},
	}

	for _, r := range records {
		var task wrike.Task
		if err := r.Decode(&task); err != nil {
			return nil, fmt.Errorf("error decoding task: %w", err)
		}
		t.Rows = append(t.Rows, []string{
			task.ID,
			task.Title,
			task.Status,
			task.Importance,
			task.Dates.Due,
			strings.Join(task.ResponsibleIDs, ", "),
		})
	}

	return t, nil
}
