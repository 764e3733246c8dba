package ids

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command

	flagType string
}

func (c *Command) Synopsis() string {
	return "Convert legacy numeric ids to API v4 ids"
}

func (c *Command) Help() string {
	return `Usage: wrike ids -type=<type> <id>...

  Convert legacy ids, such as those shown in the Wrike web interface, into
  the ids the API uses. Valid types are: ` + typeNames() + `.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("ids", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.StringVar(
		&c.flagType, "type", "",
		"(Required) Entity type of the ids, e.g. task or ApiV2Task",
	)

	return f
}

func typeNames() string {
	var names []string
	for _, t := range wrike.IDTypes() {
		names = append(names, strings.ToLower(t.String()))
	}
	return strings.Join(names, ", ")
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	legacyIDs := f.Args()

	if c.flagType == "" {
		c.UI.Error("type flag is required")
		return 1
	}
	if len(legacyIDs) == 0 {
		c.UI.Error("at least one id is required")
		return 1
	}

	idType, err := wrike.ParseIDType(c.flagType)
	if err != nil {
		c.UI.Error(fmt.Sprintf("%v (valid types: %s)", err, typeNames()))
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

	resp, err := client.ConvertLegacyIDs(ctx, legacyIDs, idType)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error converting ids: %v", err))
		return 1
	}

	t := base.RecordTable(resp.Data,
		base.Col("Legacy ID", "apiV2Id"),
		base.Col("ID", "id"),
	)
	if err := c.Render(resp.Data, t); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	return 0
}
