package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	h, err := NewHistory(path)
	require.NoError(t, err)

	apps, err := h.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, apps.Len())

	at := time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, h.Append(
		&Application{JobID: "10", ResumeID: "1", Title: "Go Dev", Company: "Acme", AppliedAt: at},
		&Application{JobID: "11", ResumeID: "1", AppliedAt: at},
	))
	require.NoError(t, h.Append(&Application{JobID: "10", ResumeID: "2", AppliedAt: at}))

	apps, err = h.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, apps.Len())
	assert.Equal(t, []string{"10", "11"}, apps.JobIDs())
	assert.Equal(t, "Acme", apps.Items[0].Company)
	assert.True(t, apps.Items[0].AppliedAt.Equal(at))

	ok, err := h.Has("10", "2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Has("11", "2")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Has("11", "")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHistoryEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	h, err := NewHistory(path)
	require.NoError(t, err)

	apps, err := h.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, apps.Len())
}
