package wrike

import (
	"context"
	"fmt"
	"strings"
)

// TrackedDateFilter renders the trackedDate query parameter.
//
// One date selects timelogs tracked on exactly that date, two dates select
// the inclusive range between them and no dates disables the filter. Dates
// use the API's yyyy-MM-dd or yyyy-MM-ddTHH:mm:ss form and are not
// validated here.
func TrackedDateFilter(dates ...string) (string, bool, error) {
	switch len(dates) {
	case 0:
		return "", false, nil
	case 1:
		return mapLiteral("equal", dates[0]), true, nil
	case 2:
		return mapLiteral("start", dates[0], "end", dates[1]), true, nil
	default:
		return "", false, fmt.Errorf("trackedDate takes one or two dates, got %d", len(dates))
	}
}

// QueryTimelogs fetches timelogs under location, e.g. "tasks/IEAAAAAQ" or
// "folders/IEAAAAAB". An empty location queries the whole account.
//
// descendants=true is always sent so timelogs of subtasks and subfolders
// are included. trackedDate optionally narrows the result; see
// TrackedDateFilter.
func (c *Client) QueryTimelogs(ctx context.Context, location string, trackedDate ...string) (*Response, error) {
	params := map[string]string{
		"descendants": "true",
	}

	filter, ok, err := TrackedDateFilter(trackedDate...)
	if err != nil {
		return nil, &Error{Op: "QueryTimelogs", Err: err}
	}
	if ok {
		params["trackedDate"] = filter
	}

	path := "timelogs"
	if location = strings.Trim(location, "/"); location != "" {
		path = location + "/timelogs"
	}

	return c.transport.Get(ctx, path, params)
}
