// Package gitutil reads repository facts used to enrich the generated
// document.
package gitutil

import (
	"strings"

	"github.com/go-git/go-git/v5"
)

var sshRemotePrefix = "git@"

// OriginURL returns the fetch URL of the origin remote of the
// repository at path. The second return is false when path is not a git
// repository or carries no origin remote; callers treat that as "no
// clone hint", never as an error.
func OriginURL(path string) (string, bool) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return "", false
	}
	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", false
	}
	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", false
	}
	return normalizeRemoteURL(urls[0]), true
}

// normalizeRemoteURL rewrites scp-style SSH remotes to their HTTPS
// form, so the clone command in the document works without key setup.
func normalizeRemoteURL(url string) string {
	if !strings.HasPrefix(url, sshRemotePrefix) {
		return url
	}
	rest := strings.TrimPrefix(url, sshRemotePrefix)
	host, repoPath, ok := strings.Cut(rest, ":")
	if !ok {
		return url
	}
	return "https://" + host + "/" + repoPath
}
