package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	alphanumeric := regexp.MustCompile(`^[a-z0-9]*$`)

	t.Run("length and alphabet", func(t *testing.T) {
		for _, n := range []int{0, 1, 4, 8, 16} {
			id := Generate(n)
			assert.Len(t, id, n)
			assert.True(t, alphanumeric.MatchString(id), "Generate(%d) = %q", n, id)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		assert.Empty(t, Generate(-1))
	})

	t.Run("ids do not repeat", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 100 {
			seen[Generate(8)] = true
		}
		// 36^8 possibilities; collisions across 100 draws would indicate a
		// broken random source.
		assert.GreaterOrEqual(t, len(seen), 90)
	})
}
