package wrike_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wrike/pkg/wrike"
	"github.com/hashicorp-forge/wrike/pkg/wrike/mock"
)

func TestExtractProjectStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("plain status needs no request", func(t *testing.T) {
		transport := mock.NewTransport()
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Active"}}
		status, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Active", status)
		assert.Empty(t, transport.Calls())
	})

	t.Run("custom status resolves through workflows", func(t *testing.T) {
		transport := workflowFixture()
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Custom", "customStatusId": "CS1"}}
		status, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Blocked", status)
		assert.Equal(t, 1, transport.CallCount("workflows"))
	})

	t.Run("no project is absent", func(t *testing.T) {
		transport := mock.NewTransport()
		client := newClient(t, transport)

		status, ok, err := client.ExtractProjectStatus(ctx, wrike.Record{})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, status)
		assert.Empty(t, transport.Calls())
	})

	t.Run("project that is not an object is absent", func(t *testing.T) {
		client := newClient(t, mock.NewTransport())

		_, ok, err := client.ExtractProjectStatus(ctx, wrike.Record{"project": "yes"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("custom without id keeps the raw status", func(t *testing.T) {
		transport := mock.NewTransport()
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Custom"}}
		status, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Custom", status)
		assert.Empty(t, transport.Calls())
	})

	t.Run("custom with empty id keeps the raw status", func(t *testing.T) {
		transport := mock.NewTransport()
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Custom", "customStatusId": ""}}
		status, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Custom", status)
		assert.Empty(t, transport.Calls())
	})

	t.Run("custom status id without status is absent", func(t *testing.T) {
		client := newClient(t, mock.NewTransport())

		folder := wrike.Record{"project": map[string]any{"customStatusId": "CS1"}}
		_, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown custom status id", func(t *testing.T) {
		client := newClient(t, workflowFixture())

		folder := wrike.Record{"project": map[string]any{"status": "Custom", "customStatusId": "CS404"}}
		_, ok, err := client.ExtractProjectStatus(ctx, folder)
		require.Error(t, err)
		assert.False(t, ok)

		var serr *wrike.StatusResolutionError
		require.True(t, errors.As(err, &serr))
		assert.Equal(t, "CS404", serr.CustomStatusID)
		assert.ErrorIs(t, err, wrike.ErrKeyMissing)
	})

	t.Run("custom status without name", func(t *testing.T) {
		transport := mock.NewTransport().WithData("workflows",
			wrike.Record{"id": "WF1", "customStatuses": []any{map[string]any{"id": "CS1"}}},
		)
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Custom", "customStatusId": "CS1"}}
		_, _, err := client.ExtractProjectStatus(ctx, folder)
		var serr *wrike.StatusResolutionError
		assert.True(t, errors.As(err, &serr))
	})

	t.Run("workflow fetch failure propagates", func(t *testing.T) {
		transport := mock.NewTransport().WithError("workflows", &wrike.TransportError{Method: "GET", Path: "workflows", StatusCode: 500})
		client := newClient(t, transport)

		folder := wrike.Record{"project": map[string]any{"status": "Custom", "customStatusId": "CS1"}}
		_, _, err := client.ExtractProjectStatus(ctx, folder)
		assert.ErrorIs(t, err, wrike.ErrTransport)
	})
}

func TestProjectValue(t *testing.T) {
	folder := wrike.Record{
		"project": map[string]any{
			"status":   "Green",
			"ownerIds": []any{"U1"},
			"count":    3.0,
		},
	}

	v, ok := wrike.ProjectValue(folder, "status")
	assert.True(t, ok)
	assert.Equal(t, "Green", v)

	v, ok = wrike.ProjectValue(folder, "count")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = wrike.ProjectValue(folder, "endDate")
	assert.False(t, ok)

	_, ok = wrike.ProjectValue(wrike.Record{}, "status")
	assert.False(t, ok)
}
