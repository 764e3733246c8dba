package folders

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command

	flagTitle    string
	flagSubtrees bool
}

func (c *Command) Synopsis() string {
	return "List folders and projects"
}

func (c *Command) Help() string {
	return `Usage: wrike folders [options] [id...]

  List the folder tree. With ids, only those folders are fetched.

  With -title, the folder with that exact title is shown. Adding -subtrees
  lists the folders below it instead. -subtrees also accepts a single
  folder id in place of -title.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("folders", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.StringVar(
		&c.flagTitle, "title", "",
		"Select the folder with this exact title",
	)
	f.BoolVar(
		&c.flagSubtrees, "subtrees", false,
		"List the folders below the selected folder",
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

	switch {
	case c.flagTitle != "" && len(ids) > 0:
		c.UI.Error("-title cannot be combined with folder ids")
		return 1
	case c.flagSubtrees && c.flagTitle == "" && len(ids) != 1:
		c.UI.Error("-subtrees requires -title or exactly one folder id")
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

	var records []wrike.Record
	switch {
	case c.flagSubtrees && c.flagTitle != "":
		resp, err := client.QueryFolderSubtreesByTitle(ctx, c.flagTitle)
		if err != nil {
			if errors.Is(err, wrike.ErrNotFound) {
				c.UI.Error(fmt.Sprintf("no folder titled %q", c.flagTitle))
				return 1
			}
			c.UI.Error(fmt.Sprintf("error fetching folder subtrees: %v", err))
			return 1
		}
		records = resp.Data

	case c.flagSubtrees:
		resp, err := client.QueryFolderSubtrees(ctx, ids[0])
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folder subtrees: %v", err))
			return 1
		}
		records = resp.Data

	case c.flagTitle != "":
		folder, ok, err := client.FolderByTitle(ctx, c.flagTitle)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		if !ok {
			c.UI.Error(fmt.Sprintf("no folder titled %q", c.flagTitle))
			return 1
		}
		records = []wrike.Record{folder}

	case len(ids) > 0:
		resp, err := client.QueryFolders(ctx, ids)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		records = resp.Data

	default:
		folders, err := client.Folders(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		records = folders.Values()
	}

	t, err := folderTable(records)
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

func folderTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Title", "Scope", "Project status", "Custom fields", "Children"},
	}

	for _, r := range records {
		var folder wrike.Folder
		if err := r.Decode(&folder); err != nil {
			return nil, fmt.Errorf("error decoding folder: %w", err)
		}

		var status string
		if folder.Project != nil {
			status = folder.Project.Status
		}

		fields := make([]string, 0, len(folder.CustomFields))
		for _, cf := range folder.CustomFields {
			fields = append(fields, cf.ID+"="+cf.Value)
		}

		t.Rows = append(t.Rows, []string{
			folder.ID,
			folder.Title,
			folder.Scope,
			status,
			strings.Join(fields, ", "),
			strings.Join(folder.ChildIDs, ", "),
		})
	}

	return t, nil
}
