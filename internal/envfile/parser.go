package envfile

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// nameRe matches a valid POSIX-style variable name.
var nameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Parse parses dotenv text into a File. Parsing never fails: blank
// lines, full-line comments and malformed declarations are skipped.
func Parse(text string) *File {
	f := NewFile()

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		// Skip blanks and full-line comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = trimExportPrefix(line)

		// A declaration needs an "=" between name and value. A bare
		// name declares nothing and is skipped.
		name, rest, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if !nameRe.MatchString(name) {
			continue
		}

		value, comment := splitValue(strings.TrimSpace(rest))
		f.set(Var{
			Name:     name,
			Value:    value,
			Empty:    strings.TrimSpace(value) == "",
			Optional: strings.EqualFold(comment, "optional"),
		})
	}

	return f
}

// ParseFile reads and parses the dotenv file at path. A nonexistent
// file yields an empty File, not an error.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewFile(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data)), nil
}

// trimExportPrefix drops a leading "export " so shell-style env files
// parse like plain dotenv. The word must be followed by whitespace; a
// variable literally named "export" is left alone.
func trimExportPrefix(line string) string {
	rest, ok := strings.CutPrefix(line, "export")
	if !ok || rest == "" {
		return line
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return line
	}
	return strings.TrimSpace(rest)
}

// splitValue separates a raw value from its trailing "#" comment and
// removes surrounding quotes. Inside quotes "#" and "=" are literal.
func splitValue(raw string) (string, string) {
	if raw != "" && (raw[0] == '"' || raw[0] == '\'') {
		quote := raw[0]
		if end := strings.IndexByte(raw[1:], quote); end >= 0 {
			value := raw[1 : end+1]
			comment := ""
			if _, c, ok := strings.Cut(raw[end+2:], "#"); ok {
				comment = strings.TrimSpace(c)
			}
			return value, comment
		}
		// No closing quote: treat the remainder as unquoted.
	}

	value, comment, found := strings.Cut(raw, "#")
	if !found {
		return strings.TrimSpace(raw), ""
	}
	return strings.TrimSpace(value), strings.TrimSpace(comment)
}
