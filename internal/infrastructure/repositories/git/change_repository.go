package git

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	logger "github.com/sirupsen/logrus"
	"github.com/sourcegraph/go-diff/diff"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
	"github.com/rios0rios0/docdrift/internal/domain/repositories"
)

// maxFileSnippetLines caps the code excerpt carried by a file-level record.
const maxFileSnippetLines = 80

// ChangeRepository extracts symbol-level code changes from a local Git
// repository using go-git. All inspection is read-only.
type ChangeRepository struct{}

var _ repositories.ChangeRepository = (*ChangeRepository)(nil)

// NewChangeRepository creates a new Git-backed change repository.
func NewChangeRepository() *ChangeRepository {
	return &ChangeRepository{}
}

// Extract resolves the range specification and diffs the two trees into
// ordered CodeChange records plus the set of changed paths.
func (it *ChangeRepository) Extract(
	ctx context.Context,
	repoPath string,
	spec entities.RangeSpec,
) (*entities.Extraction, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &entities.RepositoryStateError{Path: repoPath, Err: err}
	}

	baseRef, targetRef := spec.Refs()
	logger.Debugf("Diffing %s..%s", baseRef, targetRef)

	baseTree, baseHash, err := resolveTree(repo, baseRef)
	if err != nil {
		return nil, err
	}
	targetTree, targetHash, err := resolveTree(repo, targetRef)
	if err != nil {
		return nil, err
	}

	treeChanges, err := object.DiffTreeWithOptions(ctx, baseTree, targetTree, object.DefaultDiffTreeOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s..%s: %w", baseRef, targetRef, err)
	}

	extraction := &entities.Extraction{
		Metadata: entities.RunMetadata{
			RepoPath:       repoPath,
			FromRef:        spec.FromRef,
			ToRef:          spec.ToRef,
			Since:          spec.Since,
			Branch:         spec.Branch,
			ResolvedBase:   baseHash,
			ResolvedTarget: targetHash,
		},
	}

	seenPaths := make(map[string]bool)
	for _, treeChange := range treeChanges {
		records, paths, convErr := convertChange(treeChange)
		if convErr != nil {
			logger.Warnf("Skipping unreadable change %s: %v", treeChange, convErr)
			continue
		}
		extraction.Changes = append(extraction.Changes, records...)
		for _, path := range paths {
			if !seenPaths[path] {
				seenPaths[path] = true
				extraction.ChangedPaths = append(extraction.ChangedPaths, path)
			}
		}
	}
	sort.Strings(extraction.ChangedPaths)

	return extraction, nil
}

// resolveTree resolves a revision string to its commit tree and full hash.
func resolveTree(repo *gogit.Repository, ref string) (*object.Tree, string, error) {
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, "", &entities.RevisionResolutionError{Ref: ref, Err: err}
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, "", &entities.RevisionResolutionError{Ref: ref, Err: err}
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load tree for %s: %w", ref, err)
	}
	return tree, hash.String(), nil
}

// convertChange turns one tree-level change into symbol-level records (or a
// single file-level record when the language is not recognized).
func convertChange(treeChange *object.Change) ([]entities.CodeChange, []string, error) {
	action, err := treeChange.Action()
	if err != nil {
		return nil, nil, err
	}

	from, to, err := treeChange.Files()
	if err != nil {
		return nil, nil, err
	}

	path := treeChange.To.Name
	if path == "" {
		path = treeChange.From.Name
	}

	var paths []string
	if treeChange.From.Name != "" {
		paths = append(paths, treeChange.From.Name)
	}
	if treeChange.To.Name != "" && treeChange.To.Name != treeChange.From.Name {
		paths = append(paths, treeChange.To.Name)
	}

	oldContent := fileContents(from)
	newContent := fileContents(to)
	added, deleted := patchStats(treeChange)

	var records []entities.CodeChange
	switch action {
	case merkletrie.Insert:
		records = wholeFileRecords(path, entities.ChangeAdded, "", newContent, added, deleted)
	case merkletrie.Delete:
		records = wholeFileRecords(path, entities.ChangeRemoved, oldContent, "", added, deleted)
	case merkletrie.Modify:
		records = modifiedRecords(path, oldContent, newContent, added, deleted)
	}

	return records, paths, nil
}

// wholeFileRecords maps an added or removed file to per-symbol records, or a
// single file-level record when no symbols are recognized.
func wholeFileRecords(
	path string,
	kind entities.ChangeKind,
	oldContent, newContent string,
	added, deleted int,
) []entities.CodeChange {
	content := newContent
	if kind == entities.ChangeRemoved {
		content = oldContent
	}

	symbols := extractSymbols(path, content)
	if len(symbols) == 0 {
		return []entities.CodeChange{fileRecord(path, kind, oldContent, newContent, added, deleted)}
	}

	records := make([]entities.CodeChange, 0, len(symbols))
	for _, symbol := range symbols {
		record := entities.CodeChange{
			FilePath: path,
			Symbol:   symbol.name,
			Kind:     kind,
			Summary:  fmt.Sprintf("%s %s in %s", kind, symbol.name, path),
		}
		if kind == entities.ChangeRemoved {
			record.OldCode = symbol.snippet
		} else {
			record.NewCode = symbol.snippet
		}
		records = append(records, record)
	}
	return records
}

// modifiedRecords compares the symbol tables of both revisions: symbols only
// in the new content are added, only in the old are removed, and symbols in
// both with a differing snippet are modified.
func modifiedRecords(
	path, oldContent, newContent string,
	added, deleted int,
) []entities.CodeChange {
	oldSymbols := extractSymbols(path, oldContent)
	newSymbols := extractSymbols(path, newContent)

	if len(oldSymbols) == 0 && len(newSymbols) == 0 {
		return []entities.CodeChange{
			fileRecord(path, entities.ChangeModified, oldContent, newContent, added, deleted),
		}
	}

	oldByName := make(map[string]symbolBlock, len(oldSymbols))
	for _, symbol := range oldSymbols {
		if _, ok := oldByName[symbol.name]; !ok {
			oldByName[symbol.name] = symbol
		}
	}
	newNames := make(map[string]bool, len(newSymbols))
	for _, symbol := range newSymbols {
		newNames[symbol.name] = true
	}
	renamedFrom := detectRenames(oldSymbols, newSymbols, oldByName, newNames)

	seenNew := make(map[string]bool, len(newSymbols))
	var records []entities.CodeChange
	for _, symbol := range newSymbols {
		if seenNew[symbol.name] {
			continue
		}
		seenNew[symbol.name] = true

		previous, existed := oldByName[symbol.name]
		origin, renamed := renamedFrom[symbol.name]
		switch {
		case renamed:
			records = append(records, entities.CodeChange{
				FilePath:       path,
				Symbol:         symbol.name,
				PreviousSymbol: origin.name,
				Kind:           entities.ChangeModified,
				OldCode:        origin.snippet,
				NewCode:        symbol.snippet,
				Summary:        fmt.Sprintf("renamed %s to %s in %s", origin.name, symbol.name, path),
			})
		case !existed:
			records = append(records, entities.CodeChange{
				FilePath: path,
				Symbol:   symbol.name,
				Kind:     entities.ChangeAdded,
				NewCode:  symbol.snippet,
				Summary:  fmt.Sprintf("added %s in %s", symbol.name, path),
			})
		case previous.snippet != symbol.snippet:
			records = append(records, entities.CodeChange{
				FilePath: path,
				Symbol:   symbol.name,
				Kind:     entities.ChangeModified,
				OldCode:  previous.snippet,
				NewCode:  symbol.snippet,
				Summary:  fmt.Sprintf("modified %s in %s (+%d/-%d)", symbol.name, path, added, deleted),
			})
		}
	}

	renamedOld := make(map[string]bool, len(renamedFrom))
	for _, origin := range renamedFrom {
		renamedOld[origin.name] = true
	}
	seenOld := make(map[string]bool, len(oldSymbols))
	for _, symbol := range oldSymbols {
		if newNames[symbol.name] || renamedOld[symbol.name] || seenOld[symbol.name] {
			continue
		}
		seenOld[symbol.name] = true
		records = append(records, entities.CodeChange{
			FilePath: path,
			Symbol:   symbol.name,
			Kind:     entities.ChangeRemoved,
			OldCode:  symbol.snippet,
			Summary:  fmt.Sprintf("removed %s in %s", symbol.name, path),
		})
	}

	if len(records) == 0 {
		// Content changed outside any recognized symbol (imports, comments).
		return []entities.CodeChange{
			fileRecord(path, entities.ChangeModified, oldContent, newContent, added, deleted),
		}
	}
	return records
}

// detectRenames pairs symbols that only exist in the old revision with
// symbols that only exist in the new one when their bodies match apart from
// the declaration line. A rename is one modification, not a removal plus an
// addition. Returns new name -> old block.
func detectRenames(
	oldSymbols, newSymbols []symbolBlock,
	oldByName map[string]symbolBlock,
	newNames map[string]bool,
) map[string]symbolBlock {
	var removedOnly []symbolBlock
	seenOld := make(map[string]bool, len(oldSymbols))
	for _, symbol := range oldSymbols {
		if !newNames[symbol.name] && !seenOld[symbol.name] {
			seenOld[symbol.name] = true
			removedOnly = append(removedOnly, symbol)
		}
	}
	if len(removedOnly) == 0 {
		return nil
	}

	renames := make(map[string]symbolBlock)
	paired := make(map[string]bool, len(removedOnly))
	for _, symbol := range newSymbols {
		if _, existed := oldByName[symbol.name]; existed {
			continue
		}
		body := symbolBody(symbol.snippet)
		if body == "" {
			continue // one-line declarations carry no body to match on
		}
		for _, origin := range removedOnly {
			if paired[origin.name] || symbolBody(origin.snippet) != body {
				continue
			}
			paired[origin.name] = true
			renames[symbol.name] = origin
			break
		}
	}
	return renames
}

func fileRecord(
	path string,
	kind entities.ChangeKind,
	oldContent, newContent string,
	added, deleted int,
) entities.CodeChange {
	return entities.CodeChange{
		FilePath: path,
		Kind:     kind,
		OldCode:  truncateLines(oldContent, maxFileSnippetLines),
		NewCode:  truncateLines(newContent, maxFileSnippetLines),
		Summary:  fmt.Sprintf("%s %s (+%d/-%d)", kind, path, added, deleted),
	}
}

func truncateLines(content string, max int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= max {
		return content
	}
	return strings.Join(lines[:max], "\n")
}

// fileContents reads a tree file, returning an empty string for missing or
// binary entries.
func fileContents(file *object.File) string {
	if file == nil {
		return ""
	}
	if binary, err := file.IsBinary(); err != nil || binary {
		return ""
	}
	content, err := file.Contents()
	if err != nil {
		return ""
	}
	return content
}

// patchStats derives per-file added/deleted line counts by parsing the
// generated patch text.
func patchStats(treeChange *object.Change) (int, int) {
	patch, err := treeChange.Patch()
	if err != nil {
		return 0, 0
	}
	fileDiffs, err := diff.ParseMultiFileDiff([]byte(patch.String()))
	if err != nil || len(fileDiffs) == 0 {
		return 0, 0
	}
	stat := fileDiffs[0].Stat()
	return int(stat.Added + stat.Changed), int(stat.Deleted + stat.Changed)
}
