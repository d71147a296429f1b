// Package cookies parses Netscape cookie-file exports for authenticated
// page fetches. Only name/value pairs are used; domain, path, and expiry
// fields are carried by the file but not enforced here.
package cookies

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Netscape format columns: domain, flag, path, secure, expiry, name, value.
const numFields = 7

// Cookie is a single name/value pair from a cookie file.
type Cookie struct {
	Name  string
	Value string
}

// Load reads a Netscape cookie file. Lines starting with '#' and blank lines
// are ignored; lines with fewer than seven tab-separated fields are skipped.
func Load(path string) ([]Cookie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cookie file: %w", err)
	}
	defer f.Close()

	var out []Cookie
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		c, ok := parseLine(line)
		if !ok {
			continue
		}
		out = append(out, c)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading cookie file: %w", err)
	}

	return out, nil
}

// parseLine splits one tab-separated cookie line into a name/value pair.
func parseLine(line string) (Cookie, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) < numFields {
		return Cookie{}, false
	}

	name := fields[5]
	if name == "" {
		return Cookie{}, false
	}

	return Cookie{Name: name, Value: fields[6]}, true
}

// Header renders cookies as a Cookie request header value.
func Header(cs []Cookie) string {
	if len(cs) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(cs))
	for _, c := range cs {
		pairs = append(pairs, c.Name+"="+c.Value)
	}
	return strings.Join(pairs, "; ")
}
