package wrike_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wrike/pkg/wrike"
	"github.com/hashicorp-forge/wrike/pkg/wrike/mock"
)

func TestConvertLegacyIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("single folder id", func(t *testing.T) {
		transport := mock.NewTransport().WithData("ids/", wrike.Record{"id": "IEAAAAAB", "apiV2Id": "12345"})
		client := newClient(t, transport)

		resp, err := client.ConvertLegacyIDs(ctx, []string{"12345"}, wrike.IDTypeFolder)
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)

		call, ok := transport.LastCall()
		require.True(t, ok)
		assert.Equal(t, "GET", call.Method)
		assert.Equal(t, "ids/", call.Path)
		assert.Equal(t, map[string]string{
			"type": "ApiV2Folder",
			"ids":  "['12345']",
		}, call.Params)
	})

	t.Run("several ids are not cached", func(t *testing.T) {
		transport := mock.NewTransport().WithData("ids/")
		client := newClient(t, transport)

		for i := 0; i < 2; i++ {
			_, err := client.ConvertLegacyIDs(ctx, []string{"1", "2"}, wrike.IDTypeTask)
			require.NoError(t, err)
		}

		assert.Equal(t, 2, transport.CallCount("ids/"))
		call, _ := transport.LastCall()
		assert.Equal(t, "ApiV2Task", call.Params["type"])
		assert.Equal(t, "['1', '2']", call.Params["ids"])
	})

	t.Run("unknown type fails before any request", func(t *testing.T) {
		transport := mock.NewTransport()
		client := newClient(t, transport)

		_, err := client.ConvertLegacyIDs(ctx, []string{"1"}, wrike.IDType(99))
		assert.ErrorIs(t, err, wrike.ErrInvalidIDType)
		assert.Empty(t, transport.Calls())
	})
}

func TestIDType_ProtocolName(t *testing.T) {
	want := map[wrike.IDType]string{
		wrike.IDTypeAccount:    "ApiV2Account",
		wrike.IDTypeUser:       "ApiV2User",
		wrike.IDTypeFolder:     "ApiV2Folder",
		wrike.IDTypeTask:       "ApiV2Task",
		wrike.IDTypeComment:    "ApiV2Comment",
		wrike.IDTypeAttachment: "ApiV2Attachment",
		wrike.IDTypeTimelog:    "ApiV2Timelog",
	}

	require.Len(t, wrike.IDTypes(), len(want))
	for _, typ := range wrike.IDTypes() {
		name, ok := typ.ProtocolName()
		assert.True(t, ok, typ.String())
		assert.Equal(t, want[typ], name)
	}

	_, ok := wrike.IDType(0).ProtocolName()
	assert.False(t, ok)
	assert.Equal(t, "IDType(0)", wrike.IDType(0).String())
}

func TestParseIDType(t *testing.T) {
	tests := []struct {
		input   string
		want    wrike.IDType
		wantErr bool
	}{
		{input: "FOLDER", want: wrike.IDTypeFolder},
		{input: "folder", want: wrike.IDTypeFolder},
		{input: "Folder", want: wrike.IDTypeFolder},
		{input: "ApiV2Folder", want: wrike.IDTypeFolder},
		{input: "apiv2task", want: wrike.IDTypeTask},
		{input: "timelog", want: wrike.IDTypeTimelog},
		{input: "time-log", want: wrike.IDTypeTimelog},
		{input: "TimeLog", want: wrike.IDTypeTimelog},
		{input: " attachment ", want: wrike.IDTypeAttachment},
		{input: "project", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := wrike.ParseIDType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, wrike.ErrInvalidIDType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
