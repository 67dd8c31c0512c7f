//go:build unit

package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "ssh url",
			url:  "git@github.com:user/repository.git",
			want: "repository",
		},
		{
			name: "ssh url without suffix",
			url:  "git@github.com:user/repository",
			want: "repository",
		},
		{
			name: "https url",
			url:  "https://github.com/user/my-repo.git",
			want: "my-repo",
		},
		{
			name: "local path",
			url:  "../some_repo",
			want: "some_repo",
		},
		{
			name: "name with underscores and dashes",
			url:  "git@example.org:team/repo_name-2.git",
			want: "repo_name-2",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepoNameFromURL(tt.url))
		})
	}
}
