// Package vcs reads file trees from git history so analysis can run against
// a named revision without checking it out.
package vcs

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// ErrNotFound is returned when a path does not exist in the tree.
var ErrNotFound = errors.New("path not found in revision")

// Tree provides read access to the file tree of a single revision.
type Tree struct {
	ref  string
	tree *object.Tree
}

// Open resolves ref (branch, tag, or hash) in the repository containing path
// and returns its tree. The .git directory is detected in parent directories.
func Open(path, ref string) (*Tree, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, fmt.Errorf("resolving revision %q: %w", ref, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("loading commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("loading tree for %s: %w", hash, err)
	}

	return &Tree{ref: ref, tree: tree}, nil
}

// Ref returns the revision this tree was resolved from.
func (t *Tree) Ref() string {
	return t.ref
}

// Files returns the paths of all blobs in the tree.
func (t *Tree) Files() ([]string, error) {
	var paths []string
	err := t.tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Read returns the content of the blob at path. It satisfies the content
// source used by the batch analyzer.
func (t *Tree) Read(path string) ([]byte, error) {
	f, err := t.tree.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	r, err := f.Reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
