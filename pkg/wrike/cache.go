package wrike

import (
	"context"
	"fmt"
)

// The accessors below look like getters but perform network I/O on a cache
// miss. Each populates its slot at most once per Reset; a failed fetch
// leaves the slot unpopulated so the next call tries again.

// Contacts returns every contact keyed by id, fetching "contacts" on the
// first call.
func (c *Client) Contacts(ctx context.Context) (Dictionary, error) {
	return c.populate(ctx, "Contacts", "contacts", &c.contacts, c.QueryContactsAll)
}

// CustomFields returns every custom field keyed by id, fetching
// "customfields" on the first call.
func (c *Client) CustomFields(ctx context.Context) (Dictionary, error) {
	return c.populate(ctx, "CustomFields", "custom_fields", &c.customFields, c.QueryCustomFieldsAll)
}

// Folders returns every folder and project keyed by id, fetching "folders"
// on the first call.
func (c *Client) Folders(ctx context.Context) (Dictionary, error) {
	return c.populate(ctx, "Folders", "folders", &c.folders, c.QueryFoldersAll)
}

// Workflows returns every workflow keyed by id, fetching "workflows" on the
// first call.
func (c *Client) Workflows(ctx context.Context) (Dictionary, error) {
	return c.populate(ctx, "Workflows", "workflows", &c.workflows, c.QueryWorkflows)
}

// CustomStatuses returns every custom status keyed by id.
//
// Custom statuses have no endpoint of their own: they are flattened out of
// the "customStatuses" list embedded in each workflow, so the first call
// populates the workflow cache if needed and issues no other request.
// Status ids are assumed to be unique across workflows; on a collision the
// status from the workflow with the greater id wins.
func (c *Client) CustomStatuses(ctx context.Context) (Dictionary, error) {
	if c.customStatuses != nil {
		return c.customStatuses, nil
	}

	workflows, err := c.Workflows(ctx)
	if err != nil {
		return nil, &Error{Op: "CustomStatuses", Err: err}
	}

	statuses := make(Dictionary)
	for _, workflow := range workflows.Values() {
		// A workflow without a status list contributes nothing.
		list, _ := workflow.Records("customStatuses")
		for i, status := range list {
			if status == nil {
				workflowID, _ := workflow.ID()
				return nil, &Error{
					Op:  "CustomStatuses",
					Err: fmt.Errorf("custom status %d of workflow %q is not an object: %w", i, workflowID, ErrKeyMissing),
				}
			}

			id, ok := status.ID()
			if !ok {
				workflowID, _ := workflow.ID()
				return nil, &Error{
					Op:  "CustomStatuses",
					Err: fmt.Errorf("custom status %d of workflow %q has no id: %w", i, workflowID, ErrKeyMissing),
				}
			}
			statuses[id] = status
		}
	}

	c.customStatuses = statuses
	c.logger.Debug("populated cache", "kind", "custom_statuses", "size", len(statuses))

	return statuses, nil
}

// populate implements the lazy pattern shared by the fetched kinds.
func (c *Client) populate(
	ctx context.Context,
	op, kind string,
	slot *Dictionary,
	fetch func(context.Context) (*Response, error),
) (Dictionary, error) {
	if *slot != nil {
		return *slot, nil
	}

	resp, err := fetch(ctx)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	dict, err := ToDictionary(resp.Data)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	*slot = dict
	c.logger.Debug("populated cache", "kind", kind, "size", len(dict))

	return dict, nil
}
