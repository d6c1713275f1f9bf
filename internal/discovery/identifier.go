package discovery

import (
	"path/filepath"
	"strings"
)

// BaseName uses the file name without its extension as identifier
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MarkerIdentifier derives the identifier from the first path component
// containing marker. Text following the marker in that component wins
// ("PodcastContent1000612" gives "1000612"); a component equal to marker
// yields the component after it. Paths without the marker use BaseName.
func MarkerIdentifier(marker string) IdentifierFunc {
	return func(path string) string {
		if marker == "" {
			return BaseName(path)
		}

		parts := strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' })
		for i, part := range parts {
			idx := strings.Index(part, marker)
			if idx < 0 {
				continue
			}

			id := part[idx+len(marker):]
			last := i == len(parts)-1
			if id == "" && !last {
				id = parts[i+1]
				last = i+1 == len(parts)-1
			}
			if last {
				id = strings.TrimSuffix(id, filepath.Ext(id))
			}
			if id != "" {
				return id
			}
			break
		}

		return BaseName(path)
	}
}
