package timelogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
	"github.com/hashicorp-forge/wrike/pkg/wrike/mock"
)

func TestTrackedDates(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		want     []string
		errorMsg string
	}{
		{name: "none"},
		{name: "single day", from: "2024-03-01", want: []string{"2024-03-01"}},
		{name: "range", from: "March 1, 2024", to: "2024/03/31", want: []string{"2024-03-01", "2024-03-31"}},
		{name: "to without from", to: "2024-03-31", errorMsg: "-to requires -from"},
		{name: "unparseable", from: "someday", errorMsg: `invalid date "someday"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := trackedDates(tt.from, tt.to)
			if tt.errorMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun(t *testing.T) {
	logs := []wrike.Record{
		{"id": "IEAAAATL1", "taskId": "IEAAAAT1", "userId": "KUAAAAA", "hours": 1.5, "trackedDate": "2024-03-01"},
		{"id": "IEAAAATL2", "taskId": "IEAAAAT1", "userId": "KUAAAAA", "hours": 2, "trackedDate": "2024-03-02"},
	}

	tests := []struct {
		name        string
		args        []string
		path        string
		trackedDate string
	}{
		{
			name: "account",
			path: "timelogs",
		},
		{
			name:        "folder with one day",
			args:        []string{"-location", "/folders/IEAAAAF1/", "-from", "2024-03-01"},
			path:        "folders/IEAAAAF1/timelogs",
			trackedDate: "{'equal': '2024-03-01'}",
		},
		{
			name:        "range",
			args:        []string{"-from", "2024-03-01", "-to", "2024-03-31"},
			path:        "timelogs",
			trackedDate: "{'start': '2024-03-01', 'end': '2024-03-31'}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := mock.NewTransport().WithData(tt.path, logs...)
			bc, ui := base.NewTestCommand(t, transport)
			c := &Command{Command: bc}

			code := c.Run(append([]string{"-format", "table"}, tt.args...))
			require.Equal(t, 0, code, ui.ErrorWriter.String())

			out := ui.OutputWriter.String()
			assert.Contains(t, out, "IEAAAATL2")
			assert.Contains(t, out, "3.50")

			call, ok := transport.LastCall()
			require.True(t, ok)
			assert.Equal(t, tt.path, call.Path)
			assert.Equal(t, "true", call.Params["descendants"])
			assert.Equal(t, tt.trackedDate, call.Params["trackedDate"])
		})
	}
}

func TestRunInvalidDate(t *testing.T) {
	transport := mock.NewTransport()
	bc, ui := base.NewTestCommand(t, transport)
	c := &Command{Command: bc}

	code := c.Run([]string{"-from", "someday"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "invalid date")
	assert.Empty(t, transport.Calls())
}
