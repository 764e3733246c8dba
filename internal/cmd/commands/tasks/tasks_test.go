package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
	"github.com/hashicorp-forge/wrike/pkg/wrike/mock"
)

func TestRun(t *testing.T) {
	task := wrike.Record{
		"id":     "IEAAAAT1",
		"title":  "Write release notes",
		"status": "Active",
		"dates":  map[string]any{"due": "2024-03-01T17:00:00"},
	}

	tests := []struct {
		name string
		args []string
		path string
	}{
		{name: "all", args: nil, path: "tasks"},
		{name: "by id", args: []string{"IEAAAAT1", "IEAAAAT2"}, path: "tasks/IEAAAAT1,IEAAAAT2"},
		{name: "in folder", args: []string{"-folder", "IEAAAAF1"}, path: "folders/IEAAAAF1/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := mock.NewTransport().WithData(tt.path, task)
			bc, ui := base.NewTestCommand(t, transport)
			c := &Command{Command: bc}

			code := c.Run(append([]string{"-format", "table"}, tt.args...))
			require.Equal(t, 0, code, ui.ErrorWriter.String())

			out := ui.OutputWriter.String()
			assert.Contains(t, out, "Write release notes")
			assert.Contains(t, out, "2024-03-01T17:00:00")
			assert.Equal(t, 1, transport.CallCount(tt.path))
		})
	}
}

func TestTaskTable(t *testing.T) {
	tbl, err := taskTable([]wrike.Record{
		{
			"id":             "IEAAAAT1",
			"title":          "Write release notes",
			"status":         "Active",
			"importance":     "High",
			"dates":          map[string]any{"type": "Planned", "due": "2024-03-01T17:00:00", "duration": 480},
			"responsibleIds": []any{"KUAAAAA", "KUAAAAB"},
		},
		{"id": "IEAAAAT2", "title": "Backlog item", "status": "Active", "dates": map[string]any{"type": "Backlog"}},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"IEAAAAT1", "Write release notes", "Active", "High", "2024-03-01T17:00:00", "KUAAAAA, KUAAAAB"},
		{"IEAAAAT2", "Backlog item", "Active", "", "", ""},
	}, tbl.Rows)
}

func TestRunFolderWithIDs(t *testing.T) {
	bc, ui := base.NewTestCommand(t, mock.NewTransport())
	c := &Command{Command: bc}

	code := c.Run([]string{"-folder", "IEAAAAF1", "IEAAAAT1"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "-folder cannot be combined")
}
