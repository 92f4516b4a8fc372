package git

import (
	"path/filepath"
	"regexp"
	"strings"
)

// maxSymbolSnippetLines caps the code excerpt carried by one symbol record.
const maxSymbolSnippetLines = 60

// symbolBlock is one symbol definition found in a source file, with the code
// lines from its declaration up to the next symbol.
type symbolBlock struct {
	name    string
	start   int
	snippet string
}

// symbolPatterns maps file extensions to the line-level declaration patterns
// recognized for that language. The first capture group is the symbol name.
// This is a deliberate heuristic: the extractor works on lines, never on an
// AST.
var symbolPatterns = map[string][]*regexp.Regexp{
	".go": {
		regexp.MustCompile(`^func\s+(?:\([^)]+\)\s+)?([A-Za-z_]\w*)`),
		regexp.MustCompile(`^type\s+([A-Za-z_]\w*)`),
	},
	".py": {
		regexp.MustCompile(`^\s*(?:async\s+)?def\s+([A-Za-z_]\w*)`),
		regexp.MustCompile(`^\s*class\s+([A-Za-z_]\w*)`),
	},
	".js": {
		regexp.MustCompile(`^\s*(?:export\s+)?(?:async\s+)?function\s+([A-Za-z_$]\w*)`),
		regexp.MustCompile(`^\s*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$]\w*)\s*=`),
	},
}

func init() {
	// TypeScript and JSX share the JavaScript patterns.
	for _, ext := range []string{".ts", ".tsx", ".jsx", ".mjs"} {
		symbolPatterns[ext] = symbolPatterns[".js"]
	}
}

// languagePatterns returns the declaration patterns for the file, or nil when
// the language is not recognized (the change then stays file-level).
func languagePatterns(path string) []*regexp.Regexp {
	return symbolPatterns[strings.ToLower(filepath.Ext(path))]
}

// extractSymbols scans the content line by line and returns the symbol blocks
// in declaration order. A block spans from its declaration to the line before
// the next declaration, trimmed of trailing blanks and capped.
func extractSymbols(path, content string) []symbolBlock {
	patterns := languagePatterns(path)
	if len(patterns) == 0 || content == "" {
		return nil
	}

	lines := strings.Split(content, "\n")

	var blocks []symbolBlock
	for i, line := range lines {
		for _, pattern := range patterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			blocks = append(blocks, symbolBlock{name: match[1], start: i})
			break
		}
	}

	for i := range blocks {
		end := len(lines)
		if i+1 < len(blocks) {
			end = blocks[i+1].start
		}
		blocks[i].snippet = joinSnippet(lines[blocks[i].start:end])
	}

	return blocks
}

// symbolBody returns the snippet without its declaration line, trimmed.
// Empty when the block is the declaration alone.
func symbolBody(snippet string) string {
	lines := strings.Split(snippet, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			return strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		}
	}
	return ""
}

func joinSnippet(lines []string) string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	if end > maxSymbolSnippetLines {
		end = maxSymbolSnippetLines
	}
	return strings.Join(lines[:end], "\n")
}
