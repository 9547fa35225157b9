package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(vars ...string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		for _, v := range vars {
			if v == key {
				return "true", true
			}
		}
		return "", false
	}
}

func TestGetCI(t *testing.T) {
	assert.Equal(t, NoCI, getCI(env()))
	assert.Equal(t, GitLabCI, getCI(env("GITLAB_CI", "CI")))
	assert.Equal(t, GitHubCI, getCI(env("GITHUB_ACTIONS", "CI")))
	assert.Equal(t, UnknownCI, getCI(env("CI")))

	assert.False(t, NoCI.IsCI())
	assert.True(t, UnknownCI.IsCI())
}
