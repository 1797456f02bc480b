package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"folder", "file", "image"} {
		k, ok := ParseKind(s)
		assert.True(t, ok, s)
		assert.Equal(t, Kind(s), k)
	}
	for _, s := range []string{"", "Folder", "video"} {
		_, ok := ParseKind(s)
		assert.False(t, ok, s)
	}
	assert.True(t, KindFolder.IsFolder())
	assert.False(t, KindImage.IsFolder())
}

func TestParentIDJSON(t *testing.T) {
	tests := []struct {
		in   string
		want ParentID
	}{
		{`0`, RootID},
		{`"0"`, RootID},
		{`""`, RootID},
		{`null`, RootID},
		{`"0190f3a2-0000-7000-8000-000000000000"`, "0190f3a2-0000-7000-8000-000000000000"},
	}
	for _, tc := range tests {
		var p ParentID
		require.NoError(t, json.Unmarshal([]byte(tc.in), &p), tc.in)
		assert.Equal(t, tc.want, p, tc.in)
	}

	var p ParentID
	assert.Error(t, json.Unmarshal([]byte(`{}`), &p))

	b, err := json.Marshal(ParentID(RootID))
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
	b, err = json.Marshal(ParentID("abc"))
	require.NoError(t, err)
	assert.Equal(t, `"abc"`, string(b))
}

func TestNewBlobFileHidesLocalPath(t *testing.T) {
	owner := uuid.New()
	f := NewBlobFile(owner, "a.txt", KindFile, RootID, true, "/srv/files/x")
	b, err := json.Marshal(f)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.NotContains(t, out, "localPath")
	assert.Equal(t, owner.String(), out["userId"])
	assert.Equal(t, true, out["isPublic"])
	assert.EqualValues(t, 0, out["parentId"])
}
