package status

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command
}

// projectStatus is one row of output.
type projectStatus struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Status string `json:"status" yaml:"status"`
}

func (c *Command) Synopsis() string {
	return "Show project statuses"
}

func (c *Command) Help() string {
	return `Usage: wrike status [options] [folder id...]

  Show the status of each project, resolving custom statuses to their
  names. Without ids, every cached folder that is a project is shown.
  Folders that are not projects are skipped. Projects whose status cannot
  be resolved are reported after the table and make the command fail.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("status", flag.ContinueOnError))
	c.GlobalFlags(f)
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

	var folders []wrike.Record
	if ids := f.Args(); len(ids) > 0 {
		resp, err := client.QueryFolders(ctx, ids)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		folders = resp.Data
	} else {
		all, err := client.Folders(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		folders = all.Values()
	}

	rows, err := projectStatuses(ctx, client, folders)

	t := &base.Table{Headers: []string{"ID", "Title", "Status"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.ID, r.Title, r.Status})
	}
	if rerr := c.Render(rows, t); rerr != nil {
		c.UI.Error(rerr.Error())
		return 1
	}

	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return 0
}

// projectStatuses resolves the status of every project in folders. Failures
// for individual folders are collected and returned together with the rows
// that did resolve.
func projectStatuses(ctx context.Context, client *wrike.Client, folders []wrike.Record) ([]projectStatus, error) {
	var result *multierror.Error
	rows := []projectStatus{}

	for _, folder := range folders {
		id, _ := folder.ID()

		status, ok, err := client.ExtractProjectStatus(ctx, folder)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("folder %s: %w", id, err))
			continue
		}
		if !ok {
			continue
		}

		title, _ := folder.String("title")
		rows = append(rows, projectStatus{ID: id, Title: title, Status: status})
	}

	return rows, result.ErrorOrNil()
}
