package attribution

import "strings"

// Canonical traffic sources. Direct means no referrer information at all;
// Other means a referrer was present but matched no known platform.
const (
	SourceDirect = "direct"
	SourceOther  = "other"
)

// rule maps any of its keywords to one canonical source tag.
type rule struct {
	source   string
	keywords []string
}

// rules is evaluated in order, first match wins. Order matters because the
// keywords are not mutually exclusive substrings.
var rules = []rule{
	{"instagram", []string{"instagram"}},
	{"facebook", []string{"facebook", "fb.com", "fb.me"}},
	{"twitter", []string{"twitter", "t.co", "x.com"}},
	{"whatsapp", []string{"whatsapp", "wa.me"}},
	{"youtube", []string{"youtube", "youtu.be"}},
	{"linkedin", []string{"linkedin"}},
	{"tiktok", []string{"tiktok"}},
	{"snapchat", []string{"snapchat"}},
	{"pinterest", []string{"pinterest"}},
}

// Detect derives one canonical source tag from an explicit hint (a ref or
// utm_source query parameter forwarded by the page) and the transport-level
// referrer. The hint wins when both are non-empty. Matching is
// case-insensitive substring search.
func Detect(hint, referrer string) string {
	ref := hint
	if ref == "" {
		ref = referrer
	}
	ref = strings.ToLower(ref)

	if ref == "" {
		return SourceDirect
	}

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(ref, kw) {
				return r.source
			}
		}
	}

	return SourceOther
}
