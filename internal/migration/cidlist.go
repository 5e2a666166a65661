package migration

import (
	"bufio"
	"bytes"
	"strings"
)

// ParseCIDList reads one content identifier per line. Blank lines, lines
// starting with '#' and repeated identifiers are skipped; order is kept.
// ipfs:// prefixes are stripped.
func ParseCIDList(data []byte) []string {
	var cids []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cid := strings.TrimPrefix(line, "ipfs://")
		if _, ok := seen[cid]; ok {
			continue
		}
		seen[cid] = struct{}{}
		cids = append(cids, cid)
	}

	return cids
}
