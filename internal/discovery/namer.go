package discovery

import (
	"fmt"
	"strings"
	"sync"
)

// Namer assigns output names for one run. The first file with a given
// identifier gets identifier+ext, the Nth gets identifier_N+ext. Names are
// never handed out twice, compared case-insensitively since the podcast
// cache usually lives on a case-insensitive volume.
type Namer struct {
	mu        sync.Mutex
	extension string
	counts    map[string]int
	used      map[string]struct{}
}

// NewNamer creates a Namer producing names ending in extension
func NewNamer(extension string) *Namer {
	return &Namer{
		extension: extension,
		counts:    make(map[string]int),
		used:      make(map[string]struct{}),
	}
}

// Assign returns the next free output name for identifier
func (n *Namer) Assign(identifier string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	for {
		n.counts[identifier]++
		name := identifier + n.extension
		if c := n.counts[identifier]; c > 1 {
			name = fmt.Sprintf("%s_%d%s", identifier, c, n.extension)
		}

		key := strings.ToLower(name)
		if _, taken := n.used[key]; taken {
			continue
		}
		n.used[key] = struct{}{}
		return name
	}
}
