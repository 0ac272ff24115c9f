package domain

import "regexp"

// handlePattern finds the "@handle" prefix of a candidate mention: start of
// text or a non-word character, then "@", then the handle itself. The
// trailing boundary rules need lookahead, which RE2 does not support, so they
// are checked by hand against the text following each candidate.
var handlePattern = regexp.MustCompile(`(?i)(?:^|\W)@([a-z0-9][a-z0-9-]*)`)

// ParseHandles scans a message body and returns the distinct handles that
// appear as valid @mentions, case preserved as written. Callers compare
// case-insensitively.
//
// A handle is one or more of [a-z0-9-] (the first character may not be "-"),
// matched case-insensitively. It must not be immediately followed by "/", so
// path-like tokens such as "@user/repo" are not mentions. It must end at a
// boundary: a run of dots followed by a non-word character, a run of dots at
// the end of the text, any other non-word non-dot character, or the end of
// the text. Trailing punctuation is therefore not absorbed: "@bob." mentions
// "bob".
//
// A body with no valid mention yields nil, never an error.
func ParseHandles(body string) []string {
	var handles []string
	var seen map[string]struct{}

	for _, m := range handlePattern.FindAllStringSubmatchIndex(body, -1) {
		handle := body[m[2]:m[3]]
		if !handleBoundaryOK(body[m[3]:]) {
			continue
		}
		if seen == nil {
			seen = make(map[string]struct{})
		}
		if _, dup := seen[handle]; dup {
			continue
		}
		seen[handle] = struct{}{}
		handles = append(handles, handle)
	}

	return handles
}

// handleBoundaryOK reports whether the text immediately after a handle
// terminates the mention. rest starts at the first byte past the handle.
func handleBoundaryOK(rest string) bool {
	if rest == "" {
		return true
	}
	if rest[0] == '/' {
		return false
	}
	if rest[0] == '.' {
		i := 1
		for i < len(rest) && rest[i] == '.' {
			i++
		}
		if i == len(rest) {
			return true
		}
		return !isWordByte(rest[i])
	}
	return !isWordByte(rest[0])
}

func isWordByte(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9', b == '_':
		return true
	}
	return false
}
