package assets

import (
	"testing"

	"github.com/milk9111/notmario/ecs/component"
	"github.com/milk9111/notmario/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIDs(t *testing.T) {
	cat, err := NewCatalog([]prefabs.AnimationSpec{
		{Name: "Ground", FrameW: 64, FrameH: 64, FrameCount: 1},
		{Name: "Brick", FrameW: 64, FrameH: 64, FrameCount: 1},
		{Name: "Cloud", FrameW: 128, FrameH: 64, FrameCount: 1},
	})
	require.NoError(t, err)

	brick, err := cat.Get("Brick")
	require.NoError(t, err)
	assert.Equal(t, component.AnimationBrick, brick.ID)

	ground, err := cat.Get("Ground")
	require.NoError(t, err)
	cloud, err := cat.Get("Cloud")
	require.NoError(t, err)
	assert.Equal(t, component.AnimationCustom, ground.ID)
	assert.Equal(t, component.AnimationCustom+1, cloud.ID)

	byID, ok := cat.ByID(cloud.ID)
	assert.True(t, ok)
	assert.Equal(t, cloud, byID)

	assert.Equal(t, []string{"Brick", "Cloud", "Ground"}, cat.Names())
}

func TestCatalogUnknownAnimation(t *testing.T) {
	cat, err := NewCatalog(nil)
	require.NoError(t, err)

	_, err = cat.Get("Nope")
	assert.ErrorIs(t, err, ErrUnknownAnimation)
}

func TestCatalogRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name  string
		specs []prefabs.AnimationSpec
	}{
		{"unnamed", []prefabs.AnimationSpec{{FrameW: 1, FrameH: 1, FrameCount: 1}}},
		{"duplicate", []prefabs.AnimationSpec{
			{Name: "Coin", FrameW: 1, FrameH: 1, FrameCount: 1},
			{Name: "Coin", FrameW: 1, FrameH: 1, FrameCount: 1},
		}},
		{"no_frames", []prefabs.AnimationSpec{{Name: "Coin", FrameW: 1, FrameH: 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.specs)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, err := LoadCatalog()
	require.NoError(t, err)

	def, err := cat.Get("Quest_Bounce")
	require.NoError(t, err)
	assert.Equal(t, component.AnimationQuestBounce, def.ID)

	_, ok := cat.Color(def.ID)
	assert.True(t, ok)
}
