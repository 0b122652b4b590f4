package archive

import (
	"path"
	"strings"
)

// metadataPrefix marks resource-fork directories written by macOS archive
// tools. Members under such a directory are creation artifacts, not content.
const metadataPrefix = "__macosx"

// isArtifact reports whether a member name refers to a hidden or metadata
// entry. Zip member names use forward slashes regardless of platform, so
// the name is split as a POSIX path. Matching is case-insensitive.
func isArtifact(name string) bool {
	for _, part := range strings.Split(path.Clean(name), "/") {
		part = strings.ToLower(part)
		if strings.HasPrefix(part, ".") || strings.HasPrefix(part, metadataPrefix) {
			return true
		}
	}
	return false
}

// matchExt returns the matched extension (lower-cased, with leading dot)
// when the member's basename ends with one of exts, or "" otherwise.
func matchExt(name string, exts []string) string {
	base := strings.ToLower(path.Base(name))
	for _, ext := range exts {
		if strings.HasSuffix(base, ext) {
			return ext
		}
	}
	return ""
}
