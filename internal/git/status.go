package git

import (
	"fmt"
	"strings"
)

// Change kinds shown next to a path.
const (
	ChangeNew        = "new"
	ChangeModified   = "modified"
	ChangeRenamed    = "renamed"
	ChangeDeleted    = "deleted"
	ChangeTypeChange = "typechange"
	ChangeConflict   = "conflict"
)

// Change is one path with what happened to it.
type Change struct {
	Kind string
	Path string
}

// Status is the working tree summary: untracked paths, changes not yet
// staged, staged changes and stash entries. A path modified both in the
// index and the work tree appears in Staged and Unstaged.
type Status struct {
	Untracked []string
	Unstaged  []Change
	Staged    []Change
	Stashed   []string
}

// Clean reports whether there is nothing to show.
func (s Status) Clean() bool {
	return len(s.Untracked) == 0 && len(s.Unstaged) == 0 && len(s.Staged) == 0 && len(s.Stashed) == 0
}

// Status reads the working tree state and the stash list.
func (r *Repository) Status() (Status, error) {
	out, err := r.git("status", "--porcelain=v1", "-z", "--untracked-files=all")
	if err != nil {
		return Status{}, fmt.Errorf("read status: %w", err)
	}
	st := parseStatus(out)

	stash, err := r.git("stash", "list", "--format=%gd: %gs")
	if err != nil {
		return st, fmt.Errorf("list stash: %w", err)
	}
	st.Stashed = lines(stash)
	return st, nil
}

// parseStatus reads NUL-separated porcelain v1 entries ("XY path"). Rename
// and copy entries are followed by the source path, which is skipped.
func parseStatus(out string) Status {
	var st Status
	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		e := entries[i]
		if len(e) < 4 {
			continue
		}
		x, y, path := e[0], e[1], e[3:]
		if x == 'R' || x == 'C' {
			i++
		}

		switch {
		case x == '?' && y == '?':
			st.Untracked = append(st.Untracked, path)
			continue
		case x == '!':
			continue
		case unmerged(x, y):
			st.Unstaged = append(st.Unstaged, Change{Kind: ChangeConflict, Path: path})
			continue
		}

		if kind := changeKind(x); kind != "" {
			st.Staged = append(st.Staged, Change{Kind: kind, Path: path})
		}
		if kind := changeKind(y); kind != "" {
			st.Unstaged = append(st.Unstaged, Change{Kind: kind, Path: path})
		}
	}
	return st
}

func unmerged(x, y byte) bool {
	return x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D')
}

func changeKind(c byte) string {
	switch c {
	case 'A', 'C':
		return ChangeNew
	case 'M':
		return ChangeModified
	case 'R':
		return ChangeRenamed
	case 'D':
		return ChangeDeleted
	case 'T':
		return ChangeTypeChange
	}
	return ""
}
