package migration

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	migs, err := Load(Runner{}.source())
	require.NoError(t, err)

	require.NotEmpty(t, migs)
	assert.Equal(t, int64(1), migs[0].Version)
	assert.Equal(t, "create_snapshots", migs[0].Name)
	assert.Contains(t, migs[0].SQL, "CREATE TABLE IF NOT EXISTS snapshots")
	assert.Len(t, migs[0].Checksum, 64)
}

func TestLoad_OrdersAndFilters(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__later.sql":  {Data: []byte("SELECT 10;")},
		"V2__earlier.sql": {Data: []byte("SELECT 2;")},
		"README.md":       {Data: []byte("ignored")},
	}

	migs, err := Load(fsys)
	require.NoError(t, err)

	require.Len(t, migs, 2)
	assert.Equal(t, int64(2), migs[0].Version)
	assert.Equal(t, int64(10), migs[1].Version)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{name: "empty file", fsys: fstest.MapFS{"V1__empty.sql": {Data: []byte("  \n")}}},
		{name: "duplicate version", fsys: fstest.MapFS{
			"V1__a.sql": {Data: []byte("SELECT 1;")},
			"V1__b.sql": {Data: []byte("SELECT 1;")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			assert.Error(t, err)
		})
	}
}

func TestRun_NilDB(t *testing.T) {
	assert.Error(t, Runner{}.Run(context.Background(), nil))
}
