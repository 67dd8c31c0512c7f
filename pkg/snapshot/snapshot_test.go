//go:build unit

package snapshot

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
)

func TestExtractor_Extract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	repo := "/home/user/repo"
	tmpDir := "/tmp/devbox-precommit-123"

	mockFS.EXPECT().MkdirTemp("", "devbox-precommit-*").Return(tmpDir, nil)
	mockGit.EXPECT().CheckoutIndex(repo, tmpDir).Return(nil)
	mockGit.EXPECT().ListStagedSubmodules(repo).Return(nil, nil)

	extractor := NewExtractor(mockFS, mockGit)
	snap, err := extractor.Extract(repo)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, snap.Path())

	mockFS.EXPECT().RemoveAll(tmpDir).Return(nil)
	assert.NoError(t, snap.Release())
}

func TestExtractor_Extract_Submodules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	repo := "/repo"
	tmpDir := "/tmp/snap"

	mockFS.EXPECT().MkdirTemp("", "devbox-precommit-*").Return(tmpDir, nil)

	// Top-level repository has one submodule, which itself has a nested one
	mockGit.EXPECT().CheckoutIndex(repo, tmpDir).Return(nil)
	mockGit.EXPECT().ListStagedSubmodules(repo).Return([]string{"vendor/sub"}, nil)

	subRepo := filepath.Join(repo, "vendor/sub")
	subTarget := filepath.Join(tmpDir, "vendor/sub")
	mockGit.EXPECT().CheckoutIndex(subRepo, subTarget).Return(nil)
	mockGit.EXPECT().ListStagedSubmodules(subRepo).Return([]string{"nested"}, nil)

	nestedRepo := filepath.Join(subRepo, "nested")
	nestedTarget := filepath.Join(subTarget, "nested")
	mockGit.EXPECT().CheckoutIndex(nestedRepo, nestedTarget).Return(nil)
	mockGit.EXPECT().ListStagedSubmodules(nestedRepo).Return(nil, nil)

	extractor := NewExtractor(mockFS, mockGit)
	snap, err := extractor.Extract(repo)
	require.NoError(t, err)
	assert.Equal(t, tmpDir, snap.Path())
}

func TestExtractor_Extract_CheckoutFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	tmpDir := "/tmp/snap"
	mockFS.EXPECT().MkdirTemp("", "devbox-precommit-*").Return(tmpDir, nil)
	mockGit.EXPECT().CheckoutIndex("/repo", tmpDir).Return(errors.New("corrupt index"))
	mockFS.EXPECT().RemoveAll(tmpDir).Return(nil)

	extractor := NewExtractor(mockFS, mockGit)
	_, err := extractor.Extract("/repo")
	assert.ErrorIs(t, err, ErrExtraction)
	assert.Contains(t, err.Error(), "corrupt index")
}

func TestExtractor_Extract_SubmoduleFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	tmpDir := "/tmp/snap"
	mockFS.EXPECT().MkdirTemp("", "devbox-precommit-*").Return(tmpDir, nil)
	mockGit.EXPECT().CheckoutIndex("/repo", tmpDir).Return(nil)
	mockGit.EXPECT().ListStagedSubmodules("/repo").Return(nil, errors.New("ls-files failed"))
	mockFS.EXPECT().RemoveAll(tmpDir).Return(nil)

	extractor := NewExtractor(mockFS, mockGit)
	_, err := extractor.Extract("/repo")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestExtractor_Extract_TempDirFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)

	mockFS.EXPECT().MkdirTemp("", "devbox-precommit-*").Return("", errors.New("disk full"))

	extractor := NewExtractor(mockFS, mockGit)
	_, err := extractor.Extract("/repo")
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestSnapshot_Release_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockFS.EXPECT().RemoveAll("/tmp/snap").Return(nil).Times(1)

	snap := New(mockFS, "/tmp/snap")
	assert.NoError(t, snap.Release())
	assert.NoError(t, snap.Release())
}
