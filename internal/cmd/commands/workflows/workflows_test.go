package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wrike/internal/cmd/base"
	"github.com/hashicorp-forge/wrike/pkg/wrike"
	"github.com/hashicorp-forge/wrike/pkg/wrike/mock"
)

func newTransport() *mock.Transport {
	return mock.NewTransport().WithData("workflows",
		wrike.Record{
			"id":       "IEAAAAWF1",
			"name":     "Default Workflow",
			"standard": true,
			"customStatuses": []any{
				map[string]any{"id": "IEAAAACS1", "name": "Active", "group": "Active", "color": "Green"},
				map[string]any{"id": "IEAAAACS2", "name": "Blocked", "group": "Deferred", "color": "Red"},
			},
		},
		wrike.Record{
			"id":   "IEAAAAWF2",
			"name": "Publishing",
			"customStatuses": []any{
				map[string]any{"id": "IEAAAACS3", "name": "Published", "group": "Completed"},
			},
		},
	)
}

func TestRunWorkflows(t *testing.T) {
	transport := newTransport()
	bc, ui := base.NewTestCommand(t, transport)
	c := &Command{Command: bc}

	code := c.Run([]string{"-format", "table"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "Default Workflow")
	assert.Contains(t, out, "Publishing")
	assert.Equal(t, 1, transport.CallCount("workflows"))
}

func TestRunStatuses(t *testing.T) {
	bc, ui := base.NewTestCommand(t, newTransport())
	c := &Command{Command: bc}

	code := c.Run([]string{"-format", "yaml", "-statuses"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	out := ui.OutputWriter.String()
	for _, name := range []string{"Active", "Blocked", "Published"} {
		assert.Contains(t, out, "name: "+name)
	}
}

func TestWorkflowTable(t *testing.T) {
	tbl, err := workflowTable([]wrike.Record{
		{"id": "IEAAAAWF1", "name": "Default Workflow", "standard": true,
			"customStatuses": []any{map[string]any{"id": "IEAAAACS1"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"IEAAAAWF1", "Default Workflow", "true", "1"}}, tbl.Rows)
}
