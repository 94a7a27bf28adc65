package statusbar

import (
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Revision identifies the checkout the dashboard runs from, usually the
// repository holding the product catalog.
type Revision struct {
	Branch string // empty for a detached HEAD
	Commit string // abbreviated hash
}

// Label renders the revision as "branch@commit", or just the commit when
// HEAD is detached. The zero Revision renders as "".
func (r Revision) Label() string {
	switch {
	case r.Commit == "":
		return r.Branch
	case r.Branch == "":
		return r.Commit
	}
	return r.Branch + "@" + r.Commit
}

const shortHash = 7

// ResolveRevision reads HEAD of the repository containing dir. Outside a
// repository, or before the first commit, it returns the zero Revision.
func ResolveRevision(dir string) Revision {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return Revision{}
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Revision{}
	}
	head, err := repo.Head()
	if err != nil {
		return Revision{}
	}

	rev := Revision{Commit: head.Hash().String()[:shortHash]}
	if name := head.Name(); name.IsBranch() {
		rev.Branch = name.Short()
	}
	return rev
}
