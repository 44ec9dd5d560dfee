package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVentures(t *testing.T) {
	items := Ventures()
	require.Len(t, items, 4)

	seen := map[string]bool{}
	for _, it := range items {
		assert.NotEmpty(t, it.ID)
		assert.NotEmpty(t, it.Name)
		assert.NotEmpty(t, it.Tags)
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
	assert.Equal(t, CompanyURL, items[0].Link)
	assert.Empty(t, items[1].Link)
}

func TestVentures_ReturnsCopy(t *testing.T) {
	items := Ventures()
	items[0].Tags[0] = "changed"

	assert.Equal(t, "Software Development", Ventures()[0].Tags[0])
}

func TestPhilosophy(t *testing.T) {
	assert.Len(t, Philosophy(), 4)
}
