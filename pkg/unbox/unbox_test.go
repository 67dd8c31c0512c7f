//go:build unit

package unbox

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/devbox/pkg/config"
	"github.com/lerenn/devbox/pkg/executor"
	"github.com/lerenn/devbox/pkg/forge"
	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
)

type unboxMocks struct {
	fs       *fs.MockFS
	git      *git.MockGit
	config   *config.MockManager
	executor *executor.MockExecutor
	resolver *forge.MockResolverInterface
}

func newTestUnboxer(ctrl *gomock.Controller) (Unboxer, unboxMocks) {
	mocks := unboxMocks{
		fs:       fs.NewMockFS(ctrl),
		git:      git.NewMockGit(ctrl),
		config:   config.NewMockManager(ctrl),
		executor: executor.NewMockExecutor(ctrl),
		resolver: forge.NewMockResolverInterface(ctrl),
	}
	unboxer := NewUnboxer(NewUnboxerParams{
		FS:       mocks.fs,
		Git:      mocks.git,
		Config:   mocks.config,
		Executor: mocks.executor,
		Resolver: mocks.resolver,
	})
	return unboxer, mocks
}

func TestUnbox_LocalPathNoConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	// RepoRef names an existing checkout: no resolution, no clone
	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_ClonesWhenDestMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("lerenn/devbox").Return(false, nil)
	mocks.resolver.EXPECT().ResolveRepository(gomock.Any(), "lerenn/devbox").Return(&forge.RepoInfo{
		Owner:    "lerenn",
		Name:     "devbox",
		CloneURL: "https://github.com/lerenn/devbox.git",
	}, nil)
	mocks.fs.EXPECT().Exists("devbox").Return(false, nil)
	mocks.git.EXPECT().Clone(git.CloneParams{
		RepoURL:    "https://github.com/lerenn/devbox.git",
		TargetPath: "devbox",
	}).Return(nil)
	mocks.git.EXPECT().Pull("devbox").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("devbox").Return(nil)
	mocks.config.EXPECT().Load("devbox").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("devbox/git_hooks").Return(false, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "lerenn/devbox"})
	assert.NoError(t, err)
}

func TestUnbox_UpdateFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(assert.AnError)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(assert.AnError)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_InstallsGitHooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(true, nil)
	mocks.fs.EXPECT().IsSymlink("/repo/.git/hooks").Return(false, nil)
	mocks.fs.EXPECT().RemoveAll("/repo/.git/hooks").Return(nil)
	mocks.fs.EXPECT().Symlink("../git_hooks", "/repo/.git/hooks").Return(nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_HooksAlreadySymlinked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(true, nil)
	mocks.fs.EXPECT().IsSymlink("/repo/.git/hooks").Return(true, nil)
	// No RemoveAll, no Symlink

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_PreSetupFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		PreSetup: []config.Command{{"./scripts/bootstrap.sh"}},
	}, nil)
	mocks.executor.EXPECT().Execute(gomock.Any(), executor.ExecuteParams{
		Dir:  "/repo",
		Args: []string{"./scripts/bootstrap.sh"},
	}).Return(executor.Result{ExitCode: 1, Output: []byte("boom")}, nil)
	// Hook installation never happens

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.ErrorIs(t, err, ErrSetupCommand)
}

func TestUnbox_CreatesVirtualenv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		Env: &config.Env{Path: "venv", Args: []string{"--python=python3"}},
	}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)
	mocks.fs.EXPECT().Exists("/repo/venv").Return(false, nil)
	mocks.fs.EXPECT().Which("virtualenv").Return("/usr/bin/virtualenv", nil)
	mocks.executor.EXPECT().Execute(gomock.Any(), executor.ExecuteParams{
		Dir:  "/repo",
		Args: []string{"virtualenv", "--python=python3", "venv"},
	}).Return(executor.Result{ExitCode: 0}, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_VirtualenvBinaryMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		Env: &config.Env{Path: "venv"},
	}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)
	mocks.fs.EXPECT().Exists("/repo/venv").Return(false, nil)
	mocks.fs.EXPECT().Which("virtualenv").Return("", errors.New("not found"))

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.ErrorIs(t, err, ErrVirtualenv)
}

func TestUnbox_SharesExistingVirtualenv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		Env: &config.Env{Path: "venv"},
	}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)
	mocks.fs.EXPECT().Exists("/repo/venv").Return(false, nil)
	mocks.fs.EXPECT().Symlink("/shared/venv", "/repo/venv").Return(nil)
	mocks.fs.EXPECT().Exists("/repo/venv").Return(true, nil)
	// No virtualenv command runs

	err := unboxer.Unbox(context.Background(), UnboxParams{
		RepoRef: "/repo",
		Venv:    "/shared/venv",
	})
	assert.NoError(t, err)
}

func TestUnbox_SharesParentVirtualenv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/code/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/code/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/code/repo").Return(nil)
	mocks.config.EXPECT().Load("/code/repo").Return(&config.Config{
		Env:    &config.Env{Path: "venv"},
		Parent: "parent-repo",
	}, nil)
	mocks.fs.EXPECT().Exists("/code/repo/git_hooks").Return(false, nil)
	mocks.fs.EXPECT().Exists("/code/parent-repo").Return(true, nil)
	mocks.config.EXPECT().Load("/code/parent-repo").Return(&config.Config{
		Env: &config.Env{Path: "parent_env"},
	}, nil)
	mocks.fs.EXPECT().Exists("/code/parent-repo/parent_env").Return(true, nil)
	mocks.fs.EXPECT().Exists("/code/repo/venv").Return(false, nil)
	mocks.fs.EXPECT().Symlink("/code/parent-repo/parent_env", "/code/repo/venv").Return(nil)
	mocks.fs.EXPECT().Exists("/code/repo/venv").Return(true, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/code/repo"})
	assert.NoError(t, err)
}

func TestUnbox_PostSetupGetsVenvPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		Env:       &config.Env{Path: "venv"},
		PostSetup: []config.Command{{"pip", "install", "-e", "."}},
	}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)
	mocks.fs.EXPECT().Exists("/repo/venv").Return(true, nil)
	mocks.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params executor.ExecuteParams) (executor.Result, error) {
			assert.Equal(t, []string{"pip", "install", "-e", "."}, params.Args)
			require.NotEmpty(t, params.Env)
			var path string
			for _, entry := range params.Env {
				if strings.HasPrefix(entry, "PATH=") {
					path = entry
				}
			}
			assert.True(t, strings.HasPrefix(path, "PATH=venv/bin"),
				"PATH should start with the venv bin dir, got %q", path)
			return executor.Result{ExitCode: 0}, nil
		})

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo"})
	assert.NoError(t, err)
}

func TestUnbox_RecursesIntoDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	// Top-level repository
	mocks.fs.EXPECT().Exists("/code/app").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/code/app").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/code/app").Return(nil)
	mocks.config.EXPECT().Load("/code/app").Return(&config.Config{
		Dependencies: []string{"git@example.com:team/lib.git"},
	}, nil)
	mocks.fs.EXPECT().Exists("/code/app/git_hooks").Return(false, nil)

	// Dependency, cloned as a peer directory
	mocks.fs.EXPECT().Exists("git@example.com:team/lib.git").Return(false, nil)
	mocks.resolver.EXPECT().ResolveRepository(gomock.Any(), "git@example.com:team/lib.git").Return(&forge.RepoInfo{
		Name:     "lib",
		CloneURL: "git@example.com:team/lib.git",
	}, nil)
	mocks.fs.EXPECT().Exists("/code/lib").Return(false, nil)
	mocks.git.EXPECT().Clone(git.CloneParams{
		RepoURL:    "git@example.com:team/lib.git",
		TargetPath: "/code/lib",
	}).Return(nil)
	mocks.git.EXPECT().Pull("/code/lib").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/code/lib").Return(nil)
	mocks.config.EXPECT().Load("/code/lib").Return(&config.Config{}, nil)
	mocks.fs.EXPECT().Exists("/code/lib/git_hooks").Return(false, nil)

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/code/app"})
	assert.NoError(t, err)
}

func TestUnbox_NoDepsSkipsDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	unboxer, mocks := newTestUnboxer(ctrl)

	mocks.fs.EXPECT().Exists("/repo").Return(true, nil).Times(2)
	mocks.git.EXPECT().Pull("/repo").Return(nil)
	mocks.git.EXPECT().SubmoduleUpdate("/repo").Return(nil)
	mocks.config.EXPECT().Load("/repo").Return(&config.Config{
		Dependencies: []string{"git@example.com:team/lib.git"},
	}, nil)
	mocks.fs.EXPECT().Exists("/repo/git_hooks").Return(false, nil)
	// No dependency calls

	err := unboxer.Unbox(context.Background(), UnboxParams{RepoRef: "/repo", NoDeps: true})
	assert.NoError(t, err)
}
