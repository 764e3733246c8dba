package wrike

import (
	"context"
	"fmt"
)

// CustomProjectStatus is the project status the API reports when the real
// status lives in a workflow's custom status referenced by customStatusId.
const CustomProjectStatus = "Custom"

// ProjectValue returns folder.project.<key>.
//
// It is absent when the folder has no "project", when "project" is not an
// object, when the key is missing or when its value is null. Values of any
// other type are returned as they are. ProjectValue never fails.
func ProjectValue(folder Record, key string) (any, bool) {
	return folder.Lookup("project", key)
}

// projectString renders a project value as a string. Non-string JSON values
// (numbers, booleans) are formatted rather than treated as absent.
func projectString(folder Record, key string) (string, bool) {
	v, ok := ProjectValue(folder, key)
	if !ok {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// ExtractProjectStatus returns the human-readable status of a project
// folder. ok is false when the folder is not a project or has no status.
//
// When the raw status is "Custom" and the project names a non-empty
// customStatusId,
// the status is resolved to that custom status's name through
// CustomStatuses. That read populates the workflow cache on first use and
// may therefore hit the network. A custom status id missing from the cache
// yields a *StatusResolutionError; Reset the client if the cache may be
// stale.
func (c *Client) ExtractProjectStatus(ctx context.Context, folder Record) (status string, ok bool, err error) {
	status, ok = projectString(folder, "status")
	customStatusID, hasCustom := projectString(folder, "customStatusId")

	if !ok || status != CustomProjectStatus || !hasCustom || customStatusID == "" {
		return status, ok, nil
	}

	statuses, err := c.CustomStatuses(ctx)
	if err != nil {
		return "", false, err
	}

	custom, found := statuses[customStatusID]
	if !found {
		return "", false, &StatusResolutionError{
			CustomStatusID: customStatusID,
			Err:            fmt.Errorf("not in custom status cache: %w", ErrKeyMissing),
		}
	}

	name, found := custom.String("name")
	if !found {
		return "", false, &StatusResolutionError{
			CustomStatusID: customStatusID,
			Err:            fmt.Errorf("custom status has no name: %w", ErrKeyMissing),
		}
	}

	return name, true, nil
}
