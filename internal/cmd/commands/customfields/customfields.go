package customfields

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "List custom field definitions"
}

func (c *Command) Help() string {
	return `Usage: wrike customfields [options] [id...]

  List the account's custom field definitions, or only the given ids.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("customfields", flag.ContinueOnError))
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

	var records []wrike.Record
	if ids := f.Args(); len(ids) > 0 {
		resp, err := client.QueryCustomFields(ctx, ids)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching custom fields: %v", err))
			return 1
		}
		records = resp.Data
	} else {
		fields, err := client.CustomFields(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching custom fields: %v", err))
			return 1
		}
		records = fields.Values()
	}

	t, err := customFieldTable(records)
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

func customFieldTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Title", "Type", "Shared with"},
	}

	for _, r := range records {
		var field wrike.CustomField
		if err := r.Decode(&field); err != nil {
			return nil, fmt.Errorf("error decoding custom field: %w", err)
		}
		t.Rows = append(t.Rows, []string{field.ID, field.Title, field.Type, strings.Join(field.SharedIDs, ", ")})
	}

	return t, nil
}
