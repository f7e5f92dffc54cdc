// Package gitremote reads the GitHub repository a working copy points at.
package gitremote

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/runoshun/taskflow/internal/domain"
)

// ErrNoRemote is returned when the repository has no usable origin remote.
var ErrNoRemote = errors.New("no origin remote")

// Ensure Detector implements domain.RemoteDetector.
var _ domain.RemoteDetector = (*Detector)(nil)

// Detector finds owner/name from the "origin" remote URL.
type Detector struct {
	host string // e.g. "github.com"
}

// NewDetector creates a Detector matching remotes on the host of webURL.
func NewDetector(webURL string) *Detector {
	host := "github.com"
	if u, err := url.Parse(webURL); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	return &Detector{host: host}
}

// Detect opens the repository containing dir and parses its origin URL.
func (d *Detector) Detect(dir string) (string, string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("open repository: %w", err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", ErrNoRemote
	}
	for _, u := range remote.Config().URLs {
		if owner, name, ok := ParseRemoteURL(u, d.host); ok {
			return owner, name, nil
		}
	}
	return "", "", ErrNoRemote
}

// ParseRemoteURL extracts owner and name from a remote URL on host.
// Supported forms:
//
//	https://github.com/owner/name(.git)
//	ssh://git@github.com/owner/name(.git)
//	git@github.com:owner/name(.git)
func ParseRemoteURL(raw, host string) (string, string, bool) {
	var path string
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() != host {
			return "", "", false
		}
		path = u.Path
	} else {
		// scp-like syntax: user@host:path
		at := strings.Index(raw, "@")
		colon := strings.Index(raw, ":")
		if colon < 0 || at > colon || raw[at+1:colon] != host {
			return "", "", false
		}
		path = raw[colon+1:]
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
