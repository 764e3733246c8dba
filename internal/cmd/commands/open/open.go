package open

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// openURL opens a URL in the user's default browser.
var openURL = browser.OpenURL

type Command struct {
	*base.Command

	flagTitle string
	flagPrint bool
}

func (c *Command) Synopsis() string {
	return "Open a folder or project in the browser"
}

func (c *Command) Help() string {
	return `Usage: wrike open [options] [folder id]

  Open the Wrike page of a folder, selected by id or by -title, in the
  default browser.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("open", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.StringVar(
		&c.flagTitle, "title", "",
		"Select the folder with this exact title",
	)
	f.BoolVar(
		&c.flagPrint, "print", false,
		"Print the link instead of opening it",
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

	byTitle := c.flagTitle != "" && len(ids) == 0
	byID := c.flagTitle == "" && len(ids) == 1
	if !byTitle && !byID {
		c.UI.Error("either -title or exactly one folder id is required")
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

	var folder wrike.Record
	if byTitle {
		var ok bool
		folder, ok, err = client.FolderByTitle(ctx, c.flagTitle)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folders: %v", err))
			return 1
		}
		if !ok {
			c.UI.Error(fmt.Sprintf("no folder titled %q", c.flagTitle))
			return 1
		}
	} else {
		resp, err := client.QueryFolders(ctx, ids)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching folder: %v", err))
			return 1
		}
		if len(resp.Data) == 0 {
			c.UI.Error(fmt.Sprintf("folder %s not found", ids[0]))
			return 1
		}
		folder = resp.Data[0]
	}

	link, ok := folder.String("permalink")
	if !ok || link == "" {
		id, _ := folder.ID()
		c.UI.Error(fmt.Sprintf("folder %s has no permalink", id))
		return 1
	}

	if c.flagPrint {
		c.UI.Output(link)
		return 0
	}

	c.Log.Debug("opening folder", "url", link)
	if err := openURL(link); err != nil {
		c.UI.Error(fmt.Sprintf("error opening browser: %v", err))
		c.UI.Output(link)
		return 1
	}

	return 0
}
