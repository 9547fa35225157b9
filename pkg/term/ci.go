package term

import (
	"os"
)

type CI string

var GitHubCI CI = "github"
var GitLabCI CI = "gitlab"
var UnknownCI CI = "unknown"
var NoCI CI = "none"

func (c CI) IsCI() bool {
	return c != NoCI
}

// GetCI reports which CI system, if any, the process is running under. CI
// logs keep every byte written, so animated frames are not drawn there.
func GetCI() CI {
	return getCI(os.LookupEnv)
}

func getCI(lookup func(string) (string, bool)) CI {
	if _, gitlab := lookup("GITLAB_CI"); gitlab {
		return GitLabCI
	} else if _, github := lookup("GITHUB_ACTIONS"); github {
		return GitHubCI
	} else if _, ci := lookup("CI"); ci {
		return UnknownCI
	}

	return NoCI
}
