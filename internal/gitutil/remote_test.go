package gitutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOriginURL(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"https://github.com/sevigo/readme-forge.git"},
	})
	require.NoError(t, err)

	url, ok := OriginURL(dir)
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/sevigo/readme-forge.git", url)
}

func TestOriginURL_NotARepo(t *testing.T) {
	_, ok := OriginURL(t.TempDir())
	assert.False(t, ok)
}

func TestOriginURL_NoOrigin(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, ok := OriginURL(dir)
	assert.False(t, ok)
}

func TestNormalizeRemoteURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "HTTPS unchanged",
			url:  "https://github.com/sevigo/readme-forge.git",
			want: "https://github.com/sevigo/readme-forge.git",
		},
		{
			name: "SCP style rewritten",
			url:  "git@github.com:sevigo/readme-forge.git",
			want: "https://github.com/sevigo/readme-forge.git",
		},
		{
			name: "Malformed SSH left alone",
			url:  "git@github.com",
			want: "git@github.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeRemoteURL(tt.url))
		})
	}
}
