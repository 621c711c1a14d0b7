package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Parse reads a generated manifest back into its entries. It understands
// exactly the subset of PHP array-literal syntax the writer emits; it is a
// reader for our own output, not a general PHP parser.
func Parse(data []byte) ([]Entry, error) {
	p := &parser{}
	for _, line := range strings.Split(string(data), "\n") {
		p.lines = append(p.lines, strings.TrimSpace(line))
	}
	return p.parse()
}

// ParseFile reads and parses a generated manifest file.
func ParseFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return entries, nil
}

type parser struct {
	lines []string
	pos   int
}

// next returns the next significant line, skipping blanks, the opening PHP
// tag, and comments.
func (p *parser) next() (string, bool) {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		p.pos++
		if line == "" || line == "<?php" || strings.HasPrefix(line, "//") {
			continue
		}
		return line, true
	}
	return "", false
}

func (p *parser) parse() ([]Entry, error) {
	line, ok := p.next()
	if !ok || line != "return array(" {
		return nil, fmt.Errorf("line %d: expected %q, got %q", p.pos, "return array(", line)
	}

	var entries []Entry
	for {
		line, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unexpected end of manifest")
		}
		if line == ");" {
			return entries, nil
		}

		name, rest, err := parseQuoted(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", p.pos, err)
		}
		if rest != "=> array(" {
			return nil, fmt.Errorf("line %d: expected entry opener, got %q", p.pos, line)
		}

		entry, err := p.parseEntry(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
}

// parseEntry consumes one package entry up to its closing "),".
func (p *parser) parseEntry(name string) (*Entry, error) {
	entry := &Entry{PackageName: name}
	for {
		line, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unexpected end of entry %q", name)
		}

		switch {
		case line == "),":
			return entry, nil

		case strings.HasPrefix(line, "'installerName'"):
			value, err := parseField(line, "installerName")
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", p.pos, err)
			}
			entry.InstallerName = value

		case line == "'classNames' => array(":
			names, err := p.parseClassNames(name)
			if err != nil {
				return nil, err
			}
			entry.ClassNames = names

		default:
			return nil, fmt.Errorf("line %d: unexpected %q in entry %q", p.pos, line, name)
		}
	}
}

// parseClassNames consumes quoted class name lines up to the closing "),".
func (p *parser) parseClassNames(entryName string) ([]string, error) {
	var names []string
	for {
		line, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("unexpected end of class list in entry %q", entryName)
		}
		if line == ")," {
			return names, nil
		}

		value, rest, err := parseQuoted(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", p.pos, err)
		}
		if rest != "," {
			return nil, fmt.Errorf("line %d: expected trailing comma, got %q", p.pos, line)
		}
		names = append(names, value)
	}
}

// parseField extracts the value from a "'key' => 'value'," line.
func parseField(line, key string) (string, error) {
	rest, ok := strings.CutPrefix(line, "'"+key+"' => ")
	if !ok {
		return "", fmt.Errorf("malformed %s field %q", key, line)
	}
	value, tail, err := parseQuoted(rest)
	if err != nil {
		return "", err
	}
	if tail != "," {
		return "", fmt.Errorf("expected trailing comma in %q", line)
	}
	return value, nil
}

// parseQuoted reads a leading single-quoted PHP string literal and returns
// its unescaped value and the trimmed remainder of the line.
func parseQuoted(s string) (value, rest string, err error) {
	if !strings.HasPrefix(s, "'") {
		return "", "", fmt.Errorf("expected quoted string in %q", s)
	}

	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) && (s[i+1] == '\'' || s[i+1] == '\\') {
			b.WriteByte(s[i+1])
			i += 2
			continue
		}
		if c == '\'' {
			return b.String(), strings.TrimSpace(s[i+1:]), nil
		}
		b.WriteByte(c)
		i++
	}
	return "", "", fmt.Errorf("unterminated string in %q", s)
}
