package desktop

import (
	"bufio"
	"fmt"
	"strings"

	"quicklaunch/internal/domain"
)

// Parse reads freedesktop Desktop Entry text and returns the descriptor it
// describes. Only the [Desktop Entry] group is consulted; action groups and
// localized keys are ignored.
func Parse(content string) (domain.Descriptor, error) {
	desc := domain.Descriptor{Kind: domain.KindUnknown}

	inEntry := false
	sawEntry := false

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return desc, fmt.Errorf("line %d: malformed group header %q", lineNo, line)
			}
			inEntry = line == "[Desktop Entry]"
			if inEntry {
				sawEntry = true
			}
			continue
		}

		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return desc, fmt.Errorf("line %d: expected key=value, got %q", lineNo, line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Localized keys like Name[de] are skipped; the default key wins
		if strings.Contains(key, "[") {
			continue
		}

		switch key {
		case "Type":
			desc.Kind = parseKind(value)
		case "Name":
			desc.Name = value
		case "Exec":
			desc.Exec = value
		case "Comment":
			desc.Comment = value
		case "Keywords":
			desc.Keywords = splitList(value)
		case "Categories":
			desc.Categories = splitList(value)
		case "NoDisplay", "Hidden":
			if value == "true" {
				desc.Hidden = true
			}
		case "Terminal":
			desc.Terminal = value == "true"
		}
	}
	if err := scanner.Err(); err != nil {
		return desc, fmt.Errorf("reading desktop entry: %w", err)
	}

	if !sawEntry {
		return desc, fmt.Errorf("no [Desktop Entry] group")
	}
	if desc.Name == "" {
		return desc, fmt.Errorf("desktop entry has no Name")
	}

	return desc, nil
}

func parseKind(value string) domain.EntryKind {
	switch value {
	case "Application":
		return domain.KindApplication
	case "Link":
		return domain.KindLink
	case "Directory":
		return domain.KindDirectory
	default:
		return domain.KindUnknown
	}
}

// splitList splits a semicolon-separated desktop-entry list. A trailing
// separator is tolerated and `\;` escapes a literal semicolon.
func splitList(value string) []string {
	var items []string
	var cur strings.Builder
	escaped := false

	for _, r := range value {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ';':
			if s := strings.TrimSpace(cur.String()); s != "" {
				items = append(items, s)
			}
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		items = append(items, s)
	}

	return items
}
