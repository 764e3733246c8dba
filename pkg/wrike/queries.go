package wrike

import (
	"context"
	"fmt"
	"net/url"
	"slices"
)

// Pass-through queries. Each issues exactly one request and returns the
// response envelope untouched; none of them reads or writes the cache.

// escapeIDs path-escapes each id and joins them for a batch fetch.
func escapeIDs(ids []string) string {
	escaped := make([]string, len(ids))
	for i, id := range ids {
		escaped[i] = url.PathEscape(id)
	}
	return ToIDList(escaped)
}

// ===================================================================
// Contacts
// ===================================================================

// QueryContacts fetches contacts by id. An empty ids slice fetches all.
func (c *Client) QueryContacts(ctx context.Context, ids []string) (*Response, error) {
	return c.transport.Get(ctx, "contacts/"+escapeIDs(ids), nil)
}

// QueryContactsAll fetches every contact in the account.
func (c *Client) QueryContactsAll(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "contacts", nil)
}

// QueryContactMe fetches the contact that owns the access token.
func (c *Client) QueryContactMe(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "contacts", map[string]string{"me": "true"})
}

// ===================================================================
// Custom fields
// ===================================================================

// QueryCustomFields fetches custom fields by id.
func (c *Client) QueryCustomFields(ctx context.Context, ids []string) (*Response, error) {
	return c.transport.Get(ctx, "customfields/"+escapeIDs(ids), nil)
}

// QueryCustomFieldsAll fetches every custom field.
func (c *Client) QueryCustomFieldsAll(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "customfields", nil)
}

// ===================================================================
// Folders
// ===================================================================

// QueryFolders fetches folders by id.
func (c *Client) QueryFolders(ctx context.Context, ids []string) (*Response, error) {
	return c.transport.Get(ctx, "folders/"+escapeIDs(ids), nil)
}

// QueryFoldersAll fetches the whole folder tree.
func (c *Client) QueryFoldersAll(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "folders", nil)
}

// QueryFolderSubtrees fetches the folders below folderID.
func (c *Client) QueryFolderSubtrees(ctx context.Context, folderID string) (*Response, error) {
	return c.transport.Get(ctx, fmt.Sprintf("folders/%s/folders", url.PathEscape(folderID)), nil)
}

// FolderByTitle searches the folder cache for a folder with the given
// title, populating the cache on first use. When several folders share the
// title the one with the smallest id is returned.
func (c *Client) FolderByTitle(ctx context.Context, title string) (Record, bool, error) {
	folders, err := c.Folders(ctx)
	if err != nil {
		return nil, false, err
	}

	ids := folders.IDs()
	idx := slices.IndexFunc(ids, func(id string) bool {
		t, ok := folders[id].String("title")
		return ok && t == title
	})
	if idx < 0 {
		return nil, false, nil
	}
	return folders[ids[idx]], true, nil
}

// QueryFolderSubtreesByTitle resolves title through FolderByTitle and
// fetches that folder's subtrees.
func (c *Client) QueryFolderSubtreesByTitle(ctx context.Context, title string) (*Response, error) {
	folder, ok, err := c.FolderByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &Error{
			Op:  "QueryFolderSubtreesByTitle",
			Err: ErrNotFound,
			Msg: fmt.Sprintf("no folder titled %q", title),
		}
	}

	id, _ := folder.ID()
	return c.QueryFolderSubtrees(ctx, id)
}

// ===================================================================
// Groups
// ===================================================================

// QueryGroup fetches one user group.
func (c *Client) QueryGroup(ctx context.Context, groupID string) (*Response, error) {
	return c.transport.Get(ctx, "groups/"+url.PathEscape(groupID), nil)
}

// QueryGroupsAll fetches every user group.
func (c *Client) QueryGroupsAll(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "groups", nil)
}

// ===================================================================
// Tasks
// ===================================================================

// QueryTasks fetches tasks by id.
func (c *Client) QueryTasks(ctx context.Context, ids []string) (*Response, error) {
	return c.transport.Get(ctx, "tasks/"+escapeIDs(ids), nil)
}

// QueryTasksAll fetches every task visible to the token.
func (c *Client) QueryTasksAll(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "tasks", nil)
}

// QueryTasksInFolder fetches the tasks of one folder.
func (c *Client) QueryTasksInFolder(ctx context.Context, folderID string) (*Response, error) {
	return c.transport.Get(ctx, fmt.Sprintf("folders/%s/tasks", url.PathEscape(folderID)), nil)
}

// ===================================================================
// Users and workflows
// ===================================================================

// QueryUser fetches one user.
func (c *Client) QueryUser(ctx context.Context, userID string) (*Response, error) {
	return c.transport.Get(ctx, "users/"+url.PathEscape(userID), nil)
}

// QueryWorkflows fetches every workflow with its custom statuses.
func (c *Client) QueryWorkflows(ctx context.Context) (*Response, error) {
	return c.transport.Get(ctx, "workflows", nil)
}
