package vocab

import (
	"bufio"
	"os"
	"strings"

	"github.com/solivagus/runesmith/internal/domain"
)

// ReadWordlist reads a newline-separated stem list used for backfilling.
// Entries are normalized; blank lines and '#' comments are skipped. The
// wordlist is an optional enrichment, so a missing or unreadable file just
// yields nil.
func ReadWordlist(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var stems []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if stem := domain.NormalizeStem(line); stem != "" {
			stems = append(stems, stem)
		}
	}
	return stems
}
