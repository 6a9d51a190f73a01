package patterns_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/dmitrymomot/regexkit/pkg/patterns"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDefinitionsBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		defs    []patterns.Definition
		cause   error
		defects int
	}{
		{
			name:    "pattern does not compile",
			defs:    []patterns.Definition{{Category: "c", Name: "broken", Source: `(`}},
			cause:   patterns.ErrInvalidPattern,
			defects: 1,
		},
		{
			name:    "lookahead is rejected by re2",
			defs:    []patterns.Definition{{Category: "c", Name: "lookahead", Source: `^(?=a)a$`}},
			cause:   patterns.ErrInvalidPattern,
			defects: 1,
		},
		{
			name:    "backtracking pattern does not compile",
			defs:    []patterns.Definition{{Category: "c", Name: "broken", Source: `(?<`, Engine: patterns.EngineBacktrack}},
			cause:   patterns.ErrInvalidPattern,
			defects: 1,
		},
		{
			name: "duplicate name in category",
			defs: []patterns.Definition{
				{Category: "c", Name: "same", Source: `a`},
				{Category: "c", Name: "same", Source: `b`},
			},
			cause:   patterns.ErrDuplicatePattern,
			defects: 1,
		},
		{
			name:    "empty name",
			defs:    []patterns.Definition{{Category: "c", Source: `a`}},
			cause:   patterns.ErrInvalidDefinition,
			defects: 1,
		},
		{
			name:    "empty category",
			defs:    []patterns.Definition{{Name: "n", Source: `a`}},
			cause:   patterns.ErrInvalidDefinition,
			defects: 1,
		},
		{
			name:    "unknown flag bits",
			defs:    []patterns.Definition{{Category: "c", Name: "n", Source: `a`, Flags: 1 << 7}},
			cause:   patterns.ErrInvalidDefinition,
			defects: 1,
		},
		{
			name:    "unknown mode",
			defs:    []patterns.Definition{{Category: "c", Name: "n", Source: `a`, Mode: 7}},
			cause:   patterns.ErrInvalidDefinition,
			defects: 1,
		},
		{
			name:    "unknown engine",
			defs:    []patterns.Definition{{Category: "c", Name: "n", Source: `a`, Engine: 9}},
			cause:   patterns.ErrInvalidDefinition,
			defects: 1,
		},
		{
			name: "every defect is reported",
			defs: []patterns.Definition{
				{Category: "c", Name: "ok", Source: `a`},
				{Category: "c", Name: "broken", Source: `[`},
				{Category: "c", Name: "alsoBroken", Source: `a{2,1}`},
			},
			cause:   patterns.ErrInvalidPattern,
			defects: 2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := patterns.NewFromDefinitions(tc.defs)
			require.Error(t, err)
			assert.Nil(t, reg, "no partially built registry may be returned")
			assert.ErrorIs(t, err, patterns.ErrBuild)
			assert.ErrorIs(t, err, tc.cause)
			assert.NotErrorIs(t, err, patterns.ErrNotFound)

			var buildErr *patterns.BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Len(t, buildErr.Defects, tc.defects)
		})
	}
}

func TestBuildErrorMessage(t *testing.T) {
	_, err := patterns.NewFromDefinitions([]patterns.Definition{
		{Category: "c", Name: "broken", Source: `(`},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to build pattern registry")
	assert.Contains(t, err.Error(), "c.broken")
	assert.Contains(t, err.Error(), "pattern does not compile")
}

func TestBuildFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := patterns.NewFromDefinitions([]patterns.Definition{
		{Category: "c", Name: "broken", Source: `(`},
	}, patterns.WithLogger(logger))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "pattern registry build failed")
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		reg := patterns.MustNew()
		assert.Equal(t, patterns.Default().Len(), reg.Len())
	})
}

func TestEmptyRegistry(t *testing.T) {
	reg, err := patterns.NewFromDefinitions(nil)
	require.NoError(t, err)
	assert.Empty(t, reg.Categories())
	assert.Empty(t, reg.Entries())
	assert.Zero(t, reg.Len())

	_, err = reg.Get(patterns.Emails, "email")
	assert.ErrorIs(t, err, patterns.ErrCategoryNotFound)
}
