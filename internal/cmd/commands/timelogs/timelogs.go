package timelogs

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/araddon/dateparse"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
)

// trackedDateLayout is the date form the timelogs endpoint accepts.
const trackedDateLayout = "2006-01-02"

type Command struct {
	*base.Command

	flagLocation string
	flagFrom     string
	flagTo       string
}

func (c *Command) Synopsis() string {
	return "List tracked time"
}

func (c *Command) Help() string {
	return `Usage: wrike timelogs [options]

  List timelogs for the whole account or for one location such as
  tasks/IEAAAAQ or folders/IEAAAAB, including its descendants.

  -from alone selects one day. -from with -to selects an inclusive range.
  Dates may be given in most common formats and are sent as yyyy-MM-dd.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("timelogs", flag.ContinueOnError))
	c.GlobalFlags(f)

	f.StringVar(
		&c.flagLocation, "location", "",
		"Path of the task or folder, e.g. folders/IEAAAAB",
	)
	f.StringVar(
		&c.flagFrom, "from", "",
		"Tracked date, or start of the tracked date range",
	)
	f.StringVar(
		&c.flagTo, "to", "",
		"End of the tracked date range (requires -from)",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	dates, err := trackedDates(c.flagFrom, c.flagTo)
	if err != nil {
		c.UI.Error(err.Error())
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

	resp, err := client.QueryTimelogs(ctx, c.flagLocation, dates...)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error fetching timelogs: %v", err))
		return 1
	}

	t, err := timelogTable(resp.Data)
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

// trackedDates normalizes the -from and -to flags.
func trackedDates(from, to string) ([]string, error) {
	if from == "" {
		if to != "" {
			return nil, fmt.Errorf("-to requires -from")
		}
		return nil, nil
	}

	var dates []string
	for _, s := range []string{from, to} {
		if s == "" {
			continue
		}
		d, err := dateparse.ParseAny(s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		dates = append(dates, d.Format(trackedDateLayout))
	}

	return dates, nil
}

func timelogTable(records []wrike.Record) (*base.Table, error) {
	t := &base.Table{
		Headers: []string{"ID", "Task", "User", "Tracked", "Hours", "Comment"},
		Aligns: []base.Alignment{
			base.AlignLeft, base.AlignLeft, base.AlignLeft,
			base.AlignLeft, base.AlignRight, base.AlignLeft,
		},
	}

	var total float64
	for _, r := range records {
		var tl wrike.Timelog
		if err := r.Decode(&tl); err != nil {
			return nil, fmt.Errorf("error decoding timelog: %w", err)
		}
		total += tl.Hours

		t.Rows = append(t.Rows, []string{
			tl.ID,
			tl.TaskID,
			tl.UserID,
			tl.TrackedDate,
			strconv.FormatFloat(tl.Hours, 'f', 2, 64),
			tl.Comment,
		})
	}

	if len(records) > 0 {
		t.Rows = append(t.Rows, []string{"", "", "", "Total", strconv.FormatFloat(total, 'f', 2, 64), ""})
	}

	return t, nil
}
