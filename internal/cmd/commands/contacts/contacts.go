package contacts

import (
	"flag"
	"fmt"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

type Command struct {
	*base.Command

	flagMe bool
}

func (c *Command) Synopsis() string {
	return "List contacts"
}

func (c *Command) Help() string {
	return `Usage: wrike contacts [options] [id...]

  List contacts in the account. With ids, only those contacts are fetched.
  With -me, only the contact owning the access token is shown.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("contacts", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.BoolVar(
		&c.flagMe, "me", false,
		"Show only the contact that owns the access token",
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

	if c.flagMe && len(ids) > 0 {
		c.UI.Error("-me cannot be combined with contact ids")
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
	case c.flagMe:
		resp, err := client.QueryContactMe(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching current contact: %v", err))
			return 1
		}
		records = resp.Data

	case len(ids) > 0:
		resp, err := client.QueryContacts(ctx, ids)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching contacts: %v", err))
			return 1
		}
		records = resp.Data

	default:
		contacts, err := client.Contacts(ctx)
		if err != nil {
			c.UI.Error(fmt.Sprintf("error fetching contacts: %v", err))
			return 1
		}
		records = contacts.Values()
	}

	t, err := contactTable(records)
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

func contactTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Name", "Type", "Email", "Role"},
	}

	for _, r := range records {
		var contact wrike.Contact
		if err := r.Decode(&contact); err != nil {
			return nil, fmt.Errorf("error decoding contact: %w", err)
		}

		var email, role string
		if len(contact.Profiles) > 0 {
			email = contact.Profiles[0].Email
			role = contact.Profiles[0].Role
		}
		t.Rows = append(t.Rows, []string{contact.ID, contact.Name(), contact.Type, email, role})
	}

	return t, nil
}
