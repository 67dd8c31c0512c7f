//go:build unit

package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/devbox/pkg/fs"
	"github.com/lerenn/devbox/pkg/git"
	"github.com/lerenn/devbox/pkg/logger"
)

// TestDependencies_New_Defaults tests that New() creates a Dependencies instance with proper defaults
func TestDependencies_New_Defaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Git)
	assert.NotNil(t, deps.Config)
	assert.NotNil(t, deps.Executor)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Resolver)
	assert.NotNil(t, deps.Extractor)

	require.NoError(t, deps.Validate())
}

// TestDependencies_Validate_Missing tests validation failure for each required dependency
func TestDependencies_Validate_Missing(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*Dependencies)
		expectedErr error
	}{
		{
			name:        "missing FS",
			modify:      func(d *Dependencies) { d.FS = nil },
			expectedErr: ErrFSMissing,
		},
		{
			name:        "missing Git",
			modify:      func(d *Dependencies) { d.Git = nil },
			expectedErr: ErrGitMissing,
		},
		{
			name:        "missing Config",
			modify:      func(d *Dependencies) { d.Config = nil },
			expectedErr: ErrConfigMissing,
		},
		{
			name:        "missing Executor",
			modify:      func(d *Dependencies) { d.Executor = nil },
			expectedErr: ErrExecutorMissing,
		},
		{
			name:        "missing Logger",
			modify:      func(d *Dependencies) { d.Logger = nil },
			expectedErr: ErrLoggerMissing,
		},
		{
			name:        "missing Prompt",
			modify:      func(d *Dependencies) { d.Prompt = nil },
			expectedErr: ErrPromptMissing,
		},
		{
			name:        "missing Resolver",
			modify:      func(d *Dependencies) { d.Resolver = nil },
			expectedErr: ErrResolverMissing,
		},
		{
			name:        "missing Extractor",
			modify:      func(d *Dependencies) { d.Extractor = nil },
			expectedErr: ErrExtractorMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := New()
			tt.modify(deps)

			err := deps.Validate()
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestDependencies_Validate_AllMissing tests validation failure when all dependencies are missing
func TestDependencies_Validate_AllMissing(t *testing.T) {
	deps := &Dependencies{} // All fields are nil

	err := deps.Validate()
	// Should return the first missing dependency (FS)
	assert.ErrorIs(t, err, ErrFSMissing)
}

// TestDependencies_FluentSetters tests that With* methods set fields and chain
func TestDependencies_FluentSetters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockGit := git.NewMockGit(ctrl)
	log := logger.NewNoopLogger()

	deps := New().
		WithFS(mockFS).
		WithGit(mockGit).
		WithLogger(log)

	assert.Same(t, mockFS, deps.FS)
	assert.Same(t, mockGit, deps.Git)
	require.NoError(t, deps.Validate())
}
