package git

import "strings"

// Placeholders shown when a header field has no value.
const (
	NoUpstream = "<no-upstream>"
	NoTags     = "<no-tags>"
)

// Header summarizes where the repository stands.
type Header struct {
	Head            string // short branch name, or short hash when detached
	HeadSubject     string
	Upstream        string
	UpstreamSubject string
	Tag             string
}

// ReadHeader collects HEAD, its upstream and the latest reachable tag.
func (r *Repository) ReadHeader() (Header, error) {
	h := Header{Upstream: NoUpstream, UpstreamSubject: "-", Tag: NoTags}

	head, err := r.git("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return h, err
	}
	h.Head = strings.TrimSpace(head)
	if h.Head == "HEAD" {
		if short, err := r.git("rev-parse", "--short", "HEAD"); err == nil {
			h.Head = strings.TrimSpace(short)
		}
	}

	subject, err := r.git("log", "-1", "--format=%s", "HEAD")
	if err != nil {
		return h, err
	}
	h.HeadSubject = strings.TrimSpace(subject)

	if up, err := r.git("rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}"); err == nil {
		h.Upstream = strings.TrimSpace(up)
		if s, err := r.git("log", "-1", "--format=%s", "@{upstream}"); err == nil {
			h.UpstreamSubject = strings.TrimSpace(s)
		}
	}

	if tag, err := r.git("describe", "--tags", "--abbrev=0"); err == nil {
		h.Tag = strings.TrimSpace(tag)
	}

	return h, nil
}
