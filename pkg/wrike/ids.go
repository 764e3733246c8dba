package wrike

import (
	"context"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// IDType declares which namespace a legacy (API v2) identifier belongs to.
// The ID lookup does not convert identifiers, it looks them up, so the type
// must match the id or the service returns no match.
type IDType int

const (
	IDTypeAccount IDType = iota + 1
	IDTypeUser
	IDTypeFolder
	IDTypeTask
	IDTypeComment
	IDTypeAttachment
	IDTypeTimelog
)

var idTypeNames = map[IDType]string{
	IDTypeAccount:    "ACCOUNT",
	IDTypeUser:       "USER",
	IDTypeFolder:     "FOLDER",
	IDTypeTask:       "TASK",
	IDTypeComment:    "COMMENT",
	IDTypeAttachment: "ATTACHMENT",
	IDTypeTimelog:    "TIMELOG",
}

var idTypeProtocolNames = map[IDType]string{
	IDTypeAccount:    "ApiV2Account",
	IDTypeUser:       "ApiV2User",
	IDTypeFolder:     "ApiV2Folder",
	IDTypeTask:       "ApiV2Task",
	IDTypeComment:    "ApiV2Comment",
	IDTypeAttachment: "ApiV2Attachment",
	IDTypeTimelog:    "ApiV2Timelog",
}

// IDTypes lists every identifier type in declaration order.
func IDTypes() []IDType {
	return []IDType{
		IDTypeAccount,
		IDTypeUser,
		IDTypeFolder,
		IDTypeTask,
		IDTypeComment,
		IDTypeAttachment,
		IDTypeTimelog,
	}
}

// String returns the type's tag, e.g. "FOLDER".
func (t IDType) String() string {
	if name, ok := idTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("IDType(%d)", int(t))
}

// ProtocolName returns the value the ids endpoint expects in its "type"
// parameter, e.g. "ApiV2Folder".
func (t IDType) ProtocolName() (string, bool) {
	name, ok := idTypeProtocolNames[t]
	return name, ok
}

// ParseIDType accepts a tag in any common casing ("folder", "FOLDER",
// "time-log") or a protocol name ("ApiV2Folder").
func ParseIDType(s string) (IDType, error) {
	for _, t := range IDTypes() {
		if strings.EqualFold(s, idTypeProtocolNames[t]) {
			return t, nil
		}
	}

	tag := strings.ReplaceAll(strcase.ToScreamingSnake(strings.TrimSpace(s)), "_", "")
	for _, t := range IDTypes() {
		if tag == idTypeNames[t] {
			return t, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidIDType, s)
}

// ConvertLegacyIDs looks up the current (API v4) identifiers for a batch of
// legacy (API v2) identifiers of type t. The web UI still reports v2 ids,
// while every v4 query needs v4 ids.
//
// One GET is issued to "ids/" (with the trailing slash the service has
// always been called with); nothing is cached. A type that does not match
// the ids yields an empty result from the service, not an error.
func (c *Client) ConvertLegacyIDs(ctx context.Context, legacyIDs []string, t IDType) (*Response, error) {
	protocolName, ok := t.ProtocolName()
	if !ok {
		return nil, &Error{Op: "ConvertLegacyIDs", Err: fmt.Errorf("%w: %v", ErrInvalidIDType, t)}
	}

	params := map[string]string{
		"type": protocolName,
		"ids":  listLiteral(legacyIDs),
	}
	return c.transport.Get(ctx, "ids/", params)
}
