package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionStateToggle(t *testing.T) {
	selection := NewSelectionState("blog")

	assert.True(t, selection.Has("blog"))
	assert.Equal(t, 1, selection.Len())

	// Toggling an unselected id selects it.
	assert.True(t, selection.Toggle("social"))
	assert.True(t, selection.Has("social"))

	// Toggling a selected id deselects it.
	assert.False(t, selection.Toggle("blog"))
	assert.False(t, selection.Has("blog"))
	assert.Equal(t, 1, selection.Len())
}

func TestSelectionStateIDsDeterministic(t *testing.T) {
	selection := NewSelectionState("social", "blog", "reviews")

	assert.Equal(t, []string{"blog", "reviews", "social"}, selection.IDs())

	// Same order regardless of insertion sequence.
	other := NewSelectionState("reviews", "social", "blog")
	assert.Equal(t, selection.IDs(), other.IDs())
}

func TestSelectionStateDuplicateSeeds(t *testing.T) {
	selection := NewSelectionState("blog", "blog")

	assert.Equal(t, 1, selection.Len())
	assert.Equal(t, []string{"blog"}, selection.IDs())
}

func TestSelectionStateEmpty(t *testing.T) {
	selection := NewSelectionState()

	assert.Equal(t, 0, selection.Len())
	assert.Empty(t, selection.IDs())
	assert.False(t, selection.Has("blog"))
}
