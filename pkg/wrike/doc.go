// Package wrike provides a client for the Wrike API v4.
//
// # Overview
//
// The client authenticates every request with a permanent access token,
// exposes query methods for the core resources (contacts, custom fields,
// folders, groups, tasks, users, workflows, timelogs) and keeps a
// per-client in-memory cache of reference data.
//
//	cfg := &wrike.Config{
//	    BaseURL:   "https://www.wrike.com/api/v4/",
//	    AuthToken: os.Getenv("WRIKE_TOKEN"),
//	}
//	client, err := wrike.New(cfg, logger)
//	if err != nil {
//	    return err
//	}
//
//	folder, ok, err := client.FolderByTitle(ctx, "Roadmap")
//	status, ok, err := client.ExtractProjectStatus(ctx, folder)
//
// # Reference data cache
//
// Contacts, CustomFields, CustomStatuses, Folders and Workflows fetch their
// data on the first call and serve it from memory afterwards:
//
//   - Each kind is cached independently and populated at most once.
//   - CustomStatuses is derived from the workflow cache; it issues no
//     request of its own.
//   - Nothing expires. Call Reset to see changes made on the server.
//   - There is no locking. See Client for the concurrency contract.
//
// # Legacy identifiers
//
// The web UI reports API v2 identifiers while v4 queries need v4 ones.
// ConvertLegacyIDs looks them up through the ids endpoint given an IDType.
//
// # Error Handling
//
// The client does not retry and does not translate errors:
//   - *TransportError for network, HTTP and decoding failures
//     (errors.Is(err, ErrTransport))
//   - ErrKeyMissing when a record lacks a required field
//   - *StatusResolutionError when a custom status id cannot be resolved
//
// Missing nested fields in ProjectValue and ExtractProjectStatus are not
// errors; they are reported through the ok result.
package wrike
