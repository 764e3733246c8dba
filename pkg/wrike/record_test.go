package wrike

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDictionary(t *testing.T) {
	t.Run("indexes every record by id", func(t *testing.T) {
		records := []Record{
			{"id": "A", "title": "Alpha"},
			{"id": "B", "title": "Beta"},
			{"id": "C", "title": "Gamma"},
		}

		dict, err := ToDictionary(records)
		require.NoError(t, err)
		assert.Len(t, dict, len(records))
		for _, r := range records {
			id, _ := r.ID()
			assert.Equal(t, r, dict[id])
		}
	})

	t.Run("later duplicate wins", func(t *testing.T) {
		dict, err := ToDictionary([]Record{
			{"id": "A", "title": "first"},
			{"id": "A", "title": "second"},
		})
		require.NoError(t, err)
		require.Len(t, dict, 1)
		assert.Equal(t, "second", dict["A"]["title"])
	})

	t.Run("empty input is populated, not nil", func(t *testing.T) {
		dict, err := ToDictionary(nil)
		require.NoError(t, err)
		assert.NotNil(t, dict)
		assert.Empty(t, dict)
	})

	t.Run("record without id fails", func(t *testing.T) {
		_, err := ToDictionary([]Record{
			{"id": "A"},
			{"title": "no id"},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrKeyMissing))
		assert.Contains(t, err.Error(), "record 1")
	})

	t.Run("non-string id fails", func(t *testing.T) {
		_, err := ToDictionary([]Record{{"id": 42.0}})
		assert.ErrorIs(t, err, ErrKeyMissing)
	})
}

func TestToIDList(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty means all", ids: nil, want: ""},
		{name: "single", ids: []string{"IEAAA"}, want: "IEAAA"},
		{name: "several", ids: []string{"IEAAA", "IEAAB", "IEAAC"}, want: "IEAAA,IEAAB,IEAAC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToIDList(tt.ids))
		})
	}
}

func TestRecord_Lookup(t *testing.T) {
	folder := Record{
		"id": "F1",
		"project": map[string]any{
			"status":   "Active",
			"ownerIds": []any{"U1"},
			"nothing":  nil,
		},
		"scalar": "x",
	}

	tests := []struct {
		name   string
		path   []string
		want   any
		wantOK bool
	}{
		{name: "top level", path: []string{"id"}, want: "F1", wantOK: true},
		{name: "nested", path: []string{"project", "status"}, want: "Active", wantOK: true},
		{name: "missing nested key", path: []string{"project", "customStatusId"}, wantOK: false},
		{name: "missing parent", path: []string{"dates", "start"}, wantOK: false},
		{name: "parent not an object", path: []string{"scalar", "status"}, wantOK: false},
		{name: "null value", path: []string{"project", "nothing"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := folder.Lookup(tt.path...)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	t.Run("nested Record values are traversed", func(t *testing.T) {
		r := Record{"project": Record{"status": "Green"}}
		s, ok := r.String("project", "status")
		assert.True(t, ok)
		assert.Equal(t, "Green", s)
	})

	t.Run("String rejects non-string values", func(t *testing.T) {
		_, ok := folder.String("project", "ownerIds")
		assert.False(t, ok)
	})
}

func TestRecord_Records(t *testing.T) {
	workflow := Record{
		"customStatuses": []any{
			map[string]any{"id": "CS1"},
			"not an object",
			map[string]any{"id": "CS2"},
		},
		"name": "Default",
	}

	list, ok := workflow.Records("customStatuses")
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, "CS1", list[0]["id"])
	assert.Nil(t, list[1])
	assert.Equal(t, "CS2", list[2]["id"])

	_, ok = workflow.Records("name")
	assert.False(t, ok)

	_, ok = workflow.Records("missing")
	assert.False(t, ok)
}

func TestRecord_Decode(t *testing.T) {
	folder := Record{
		"id":        "IEAAAAAB",
		"title":     "Roadmap",
		"scope":     "WsFolder",
		"permalink": "https://www.wrike.com/open.htm?id=1",
		"childIds":  []any{"IEAAAAAC"},
		"project": map[string]any{
			"status":         "Custom",
			"customStatusId": "IEAAAAAJ",
			"ownerIds":       []any{"KUAAAAAA"},
		},
	}

	var f Folder
	require.NoError(t, folder.Decode(&f))
	assert.Equal(t, "IEAAAAAB", f.ID)
	assert.Equal(t, "Roadmap", f.Title)
	assert.Equal(t, []string{"IEAAAAAC"}, f.ChildIDs)
	require.NotNil(t, f.Project)
	assert.Equal(t, "Custom", f.Project.Status)
	assert.Equal(t, "IEAAAAAJ", f.Project.CustomStatusID)

	workflow := Record{
		"id":   "WF1",
		"name": "Default Workflow",
		"customStatuses": []any{
			map[string]any{"id": "CS1", "name": "Blocked", "group": "Active", "hidden": false},
		},
	}
	var w Workflow
	require.NoError(t, workflow.Decode(&w))
	require.Len(t, w.CustomStatuses, 1)
	assert.Equal(t, "Blocked", w.CustomStatuses[0].Name)

	timelog := Record{"id": "T1", "hours": 1.5, "trackedDate": "2024-01-15"}
	var tl Timelog
	require.NoError(t, timelog.Decode(&tl))
	assert.InDelta(t, 1.5, tl.Hours, 0.0001)
}

func TestDictionary_Ordering(t *testing.T) {
	dict := Dictionary{
		"C": {"id": "C"},
		"A": {"id": "A"},
		"B": {"id": "B"},
	}

	assert.Equal(t, []string{"A", "B", "C"}, dict.IDs())

	values := dict.Values()
	require.Len(t, values, 3)
	assert.Equal(t, "A", values[0]["id"])
	assert.Equal(t, "C", values[2]["id"])
}

func TestContact_Name(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Contact{FirstName: "Ada", LastName: "Lovelace"}.Name())
	assert.Equal(t, "Ada", Contact{FirstName: "Ada"}.Name())
	assert.Equal(t, "Team", Contact{LastName: "Team"}.Name())
}
