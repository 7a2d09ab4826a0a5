package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	for _, in := range []string{"LOW", "MEDIUM", "HIGH"} {
		p, err := NewPriority(in)
		require.NoError(t, err)
		assert.Equal(t, in, p.String())
	}

	for _, in := range []string{"low", "URGENT", ""} {
		_, err := NewPriority(in)
		assert.Error(t, err, in)
	}
}
