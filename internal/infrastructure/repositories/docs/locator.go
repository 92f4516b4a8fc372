// Package docs implements the documentation-matching heuristic: deterministic
// symbol-name and file-path correlation between code changes and prose, with
// no semantic analysis.
package docs

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

const (
	// snippetContextLines is the number of lines kept around a match.
	snippetContextLines = 2
	// maxDocFileSize guards against indexing huge generated files.
	maxDocFileSize = 1 << 20
)

// docExtensions are the file types treated as standalone documentation.
var docExtensions = map[string]bool{
	".md":   true,
	".rst":  true,
	".txt":  true,
	".adoc": true,
}

// skippedDirs are never walked for documentation.
var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// commentPrefixes mark source lines considered inline documentation.
var commentPrefixes = []string{"//", "#", "/*", "*", "--"}

type docFile struct {
	path  string // repo-relative, slash-separated
	lines []string
}

// HeuristicLocator indexes a repository's documentation once per run and
// answers Locate queries against it. It never fails: unreadable files are
// skipped and an empty result is a valid answer.
type HeuristicLocator struct {
	docs    []docFile
	changed map[string]bool
}

var _ repositories.LocatorRepository = (*HeuristicLocator)(nil)

// NewHeuristicLocator scans repoPath for documentation files and remembers
// which paths changed in the revision range. It satisfies
// repositories.LocatorFactory.
func NewHeuristicLocator(repoPath string, changedPaths []string) repositories.LocatorRepository {
	locator := &HeuristicLocator{
		changed: make(map[string]bool, len(changedPaths)),
	}
	for _, path := range changedPaths {
		locator.changed[filepath.ToSlash(path)] = true
	}

	walkErr := filepath.WalkDir(repoPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, never fatal
		}
		if entry.IsDir() {
			if skippedDirs[entry.Name()] || strings.HasPrefix(entry.Name(), ".") && path != repoPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !docExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if info, infoErr := entry.Info(); infoErr != nil || info.Size() > maxDocFileSize {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Debugf("Skipping unreadable documentation file %s: %v", path, readErr)
			return nil
		}

		relPath, relErr := filepath.Rel(repoPath, path)
		if relErr != nil {
			return nil
		}
		locator.docs = append(locator.docs, docFile{
			path:  filepath.ToSlash(relPath),
			lines: strings.Split(string(content), "\n"),
		})
		return nil
	})
	if walkErr != nil {
		logger.Debugf("Documentation scan stopped early: %v", walkErr)
	}

	sort.Slice(locator.docs, func(i, j int) bool {
		return locator.docs[i].path < locator.docs[j].path
	})
	logger.Debugf("Indexed %d documentation files", len(locator.docs))

	return locator
}

// Locate returns the references for one change, in a fixed order: symbol
// matches, then path-correlated docs, then inline comments from the changed
// file itself.
func (it *HeuristicLocator) Locate(change entities.CodeChange) []entities.DocumentationReference {
	var refs []entities.DocumentationReference
	seen := make(map[string]bool)

	for _, ref := range it.symbolMatches(change) {
		if !seen[ref.FilePath] {
			seen[ref.FilePath] = true
			refs = append(refs, ref)
		}
	}
	for _, ref := range it.pathMatches(change) {
		if !seen[ref.FilePath] {
			seen[ref.FilePath] = true
			refs = append(refs, ref)
		}
	}
	refs = append(refs, inlineCommentRefs(change)...)

	return refs
}

// symbolPattern matches any of the change's symbol names: the current one and,
// for renames, the previous one — documentation still referring to the old
// name is exactly the stale documentation.
func symbolPattern(change entities.CodeChange) *regexp.Regexp {
	var names []string
	if change.Symbol != "" {
		names = append(names, regexp.QuoteMeta(change.Symbol))
	}
	if change.PreviousSymbol != "" && change.PreviousSymbol != change.Symbol {
		names = append(names, regexp.QuoteMeta(change.PreviousSymbol))
	}
	if len(names) == 0 {
		return nil
	}

	pattern, err := regexp.Compile(`(?i)\b(?:` + strings.Join(names, "|") + `)\b`)
	if err != nil {
		return nil
	}
	return pattern
}

// symbolMatches finds exact or normalized occurrences of the symbol name in
// documentation text; one reference per document, anchored at the first
// matching line.
func (it *HeuristicLocator) symbolMatches(change entities.CodeChange) []entities.DocumentationReference {
	pattern := symbolPattern(change)
	if pattern == nil {
		return nil
	}

	var refs []entities.DocumentationReference
	for _, doc := range it.docs {
		for i, line := range doc.lines {
			if !pattern.MatchString(line) {
				continue
			}
			refs = append(refs, entities.DocumentationReference{
				FilePath: doc.path,
				Snippet:  excerpt(doc.lines, i),
				Changed:  it.changed[doc.path],
			})
			break
		}
	}
	return refs
}

// pathMatches correlates documentation by file name: a doc named after the
// source file, or a README sitting in the source file's directory.
func (it *HeuristicLocator) pathMatches(change entities.CodeChange) []entities.DocumentationReference {
	sourcePath := filepath.ToSlash(change.FilePath)
	sourceBase := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	sourceDir := filepath.ToSlash(filepath.Dir(sourcePath))

	var refs []entities.DocumentationReference
	for _, doc := range it.docs {
		docBase := strings.TrimSuffix(filepath.Base(doc.path), filepath.Ext(doc.path))
		docDir := filepath.ToSlash(filepath.Dir(doc.path))

		named := strings.EqualFold(docBase, sourceBase)
		colocatedReadme := docDir == sourceDir && strings.EqualFold(docBase, "readme")
		if !named && !colocatedReadme {
			continue
		}

		refs = append(refs, entities.DocumentationReference{
			FilePath: doc.path,
			Snippet:  excerpt(doc.lines, 0),
			Changed:  it.changed[doc.path],
		})
	}
	return refs
}

// inlineCommentRefs extracts comment lines mentioning the symbol from the
// change snippets themselves. A comment present in both revisions did not
// move with the code (changed=false); one present in a single revision did.
func inlineCommentRefs(change entities.CodeChange) []entities.DocumentationReference {
	if change.Kind != entities.ChangeModified {
		return nil
	}

	pattern := symbolPattern(change)
	if pattern == nil {
		return nil
	}

	oldComments := commentLines(change.OldCode, pattern)
	newComments := commentLines(change.NewCode, pattern)

	var refs []entities.DocumentationReference
	seen := make(map[string]bool)
	for _, comment := range append(oldComments, newComments...) {
		if seen[comment] {
			continue
		}
		seen[comment] = true
		inBoth := containsLine(oldComments, comment) && containsLine(newComments, comment)
		refs = append(refs, entities.DocumentationReference{
			FilePath: change.FilePath,
			Snippet:  comment,
			Changed:  !inBoth,
		})
	}
	return refs
}

func commentLines(code string, pattern *regexp.Regexp) []string {
	var comments []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range commentPrefixes {
			if strings.HasPrefix(trimmed, prefix) && pattern.MatchString(trimmed) {
				comments = append(comments, trimmed)
				break
			}
		}
	}
	return comments
}

func containsLine(lines []string, target string) bool {
	for _, line := range lines {
		if line == target {
			return true
		}
	}
	return false
}

// excerpt returns the lines around the match joined as the reference snippet.
func excerpt(lines []string, at int) string {
	start := at - snippetContextLines
	if start < 0 {
		start = 0
	}
	end := at + snippetContextLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}
