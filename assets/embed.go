package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed levels.yaml daily.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadWords(f)
}

// ReadWords reads one word per line, lower-cased; blank lines and "#" comments are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// DailyList returns the embedded daily challenge words.
func DailyList() ([]string, error) {
	return readLines("daily.txt")
}

// LevelsYAML returns the embedded level definitions.
func LevelsYAML() ([]byte, error) {
	return FS.ReadFile("levels.yaml")
}
