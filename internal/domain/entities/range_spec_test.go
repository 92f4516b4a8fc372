//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docdrift/internal/domain/entities"
)

func TestRangeSpecMode(t *testing.T) {
	t.Parallel()

	t.Run("should prefer an explicit pair over every other form", func(t *testing.T) {
		t.Parallel()

		// given
		spec := entities.RangeSpec{FromRef: "v1.0.0", ToRef: "v1.1.0", Since: "HEAD~3", Branch: "main"}

		// then
		assert.Equal(t, entities.RangeExplicit, spec.Mode())
	})

	t.Run("should prefer since over branch", func(t *testing.T) {
		t.Parallel()

		// given
		spec := entities.RangeSpec{Since: "HEAD~3", Branch: "main"}

		// then
		assert.Equal(t, entities.RangeSince, spec.Mode())
	})

	t.Run("should use branch when only a branch is given", func(t *testing.T) {
		t.Parallel()

		// given
		spec := entities.RangeSpec{Branch: "main"}

		// then
		assert.Equal(t, entities.RangeBranch, spec.Mode())
	})

	t.Run("should default when nothing is given", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t, entities.RangeDefault, entities.RangeSpec{}.Mode())
	})
}

func TestRangeSpecRefs(t *testing.T) {
	t.Parallel()

	t.Run("should return the explicit pair", func(t *testing.T) {
		t.Parallel()

		// given
		spec := entities.RangeSpec{FromRef: "v1.0.0", ToRef: "v1.1.0"}

		// when
		base, target := spec.Refs()

		// then
		assert.Equal(t, "v1.0.0", base)
		assert.Equal(t, "v1.1.0", target)
	})

	t.Run("should compare since and branch against HEAD", func(t *testing.T) {
		t.Parallel()

		// when
		sinceBase, sinceTarget := entities.RangeSpec{Since: "HEAD~3"}.Refs()
		branchBase, branchTarget := entities.RangeSpec{Branch: "main"}.Refs()

		// then
		assert.Equal(t, "HEAD~3", sinceBase)
		assert.Equal(t, "HEAD", sinceTarget)
		assert.Equal(t, "main", branchBase)
		assert.Equal(t, "HEAD", branchTarget)
	})

	t.Run("should fall back to the previous commit", func(t *testing.T) {
		t.Parallel()

		// when
		base, target := entities.RangeSpec{}.Refs()

		// then
		assert.Equal(t, entities.DefaultSinceRef, base)
		assert.Equal(t, "HEAD", target)
	})
}
