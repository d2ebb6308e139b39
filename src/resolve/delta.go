package resolve

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/utils/merkletrie"
	"github.com/rs/zerolog/log"
)

// Delta detects files changed relative to a git baseline, so rule resolution
// can be limited to what a review would actually look at.
type Delta struct {
	RootDir      string
	TargetBranch string
}

// ChangedFiles returns changed paths: uncommitted worktree changes plus
// committed changes not on the target branch. A nil map means no baseline
// was available and callers should consider every file.
func (d *Delta) ChangedFiles(ctx context.Context) (map[string]bool, error) {
	repo, err := git.PlainOpen(d.RootDir)
	if err != nil {
		log.Debug().Str("root", d.RootDir).Msg("delta: not a git repository")
		return nil, nil
	}

	changed := make(map[string]bool)

	worktree, err := d.worktreeChanges(repo)
	if err != nil {
		log.Debug().Err(err).Msg("delta: worktree diff failed")
		return nil, nil
	}
	for p := range worktree {
		changed[p] = true
	}

	branch, err := d.branchChanges(ctx, repo)
	if err != nil {
		log.Debug().Err(err).Msg("delta: branch diff failed")
		return nil, nil
	}
	for p := range branch {
		changed[p] = true
	}

	return changed, nil
}

// worktreeChanges returns files with staged or unstaged modifications.
func (d *Delta) worktreeChanges(repo *git.Repository) (map[string]bool, error) {
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}

	status, err := wt.Status()
	if err != nil {
		return nil, err
	}

	changed := make(map[string]bool)
	for p, s := range status {
		if s.Worktree == git.Unmodified && s.Staging == git.Unmodified {
			continue
		}
		changed[p] = true
	}
	return changed, nil
}

// branchChanges returns files changed between HEAD and the target branch.
func (d *Delta) branchChanges(ctx context.Context, repo *git.Repository) (map[string]bool, error) {
	target := d.targetBranch()
	if target == "" {
		return nil, nil
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}
	headCommit, err := repo.CommitObject(headRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting HEAD commit: %w", err)
	}

	targetRef, err := repo.Reference(plumbing.NewBranchReferenceName(target), true)
	if err != nil {
		targetRef, err = repo.Reference(plumbing.NewRemoteReferenceName("origin", target), true)
		if err != nil {
			return nil, nil // target branch not found — worktree diff only
		}
	}
	targetCommit, err := repo.CommitObject(targetRef.Hash())
	if err != nil {
		return nil, fmt.Errorf("getting target commit: %w", err)
	}

	// HEAD on the target branch itself: diff against the parent so the
	// latest commit still counts as changed.
	if headCommit.Hash == targetCommit.Hash {
		if headCommit.NumParents() == 0 {
			return nil, nil
		}
		parent, err := headCommit.Parent(0)
		if err != nil {
			return nil, nil
		}
		targetCommit = parent
	}

	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, err
	}
	targetTree, err := targetCommit.Tree()
	if err != nil {
		return nil, err
	}

	changes, err := object.DiffTreeWithOptions(ctx, targetTree, headTree, &object.DiffTreeOptions{})
	if err != nil {
		return nil, fmt.Errorf("diffing trees: %w", err)
	}

	changed := make(map[string]bool)
	for _, change := range changes {
		if name := changeName(change); name != "" {
			changed[name] = true
		}
	}
	return changed, nil
}

// targetBranch picks the baseline branch: explicit config, common CI
// variables, then the remote default.
func (d *Delta) targetBranch() string {
	if d.TargetBranch != "" {
		return d.TargetBranch
	}

	ciVars := []string{
		"CI_MERGE_REQUEST_TARGET_BRANCH_NAME", // GitLab CI
		"GITHUB_BASE_REF",                     // GitHub Actions
		"CHANGE_TARGET",                       // Jenkins
	}
	for _, v := range ciVars {
		if branch := os.Getenv(v); branch != "" {
			return branch
		}
	}

	if branch := d.detectDefaultBranch(); branch != "" {
		return branch
	}
	return "main"
}

// detectDefaultBranch reads the symbolic ref for origin/HEAD.
func (d *Delta) detectDefaultBranch() string {
	repo, err := git.PlainOpen(d.RootDir)
	if err != nil {
		return ""
	}
	ref, err := repo.Reference(plumbing.NewRemoteReferenceName("origin", "HEAD"), false)
	if err != nil {
		return ""
	}
	const prefix = "refs/remotes/origin/"
	target := ref.Target().String()
	if strings.HasPrefix(target, prefix) {
		return strings.TrimPrefix(target, prefix)
	}
	return ""
}

func changeName(change *object.Change) string {
	action, err := change.Action()
	if err != nil {
		return ""
	}
	switch action {
	case merkletrie.Insert, merkletrie.Modify:
		return change.To.Name
	case merkletrie.Delete:
		return change.From.Name
	}
	return ""
}

// FilterChanged narrows a path list to entries present in the changed set.
// A nil set means no baseline; the list passes through untouched.
func FilterChanged(paths []string, changed map[string]bool) []string {
	if changed == nil {
		return paths
	}
	filtered := make([]string, 0, len(changed))
	for _, p := range paths {
		if changed[p] {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
