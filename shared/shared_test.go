package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fairhall/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "stalls:list", shared.BuildCacheKey("stalls", "list"))
	assert.Equal(t, "stalls", shared.BuildCacheKey("stalls"))
	assert.Equal(t, "a:b:c", shared.BuildCacheKey("a", "b", "c"))
}
