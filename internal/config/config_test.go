package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetRejectsBadValues(t *testing.T) {
	assert.ErrorContains(t, Set("timeout_ms", "soon"), "non-negative integer")
	assert.ErrorContains(t, Set("timeout_ms", "-5"), "non-negative integer")
	assert.ErrorContains(t, Set("log_level", "loud"), "unknown log level")
	assert.ErrorContains(t, Set("favorite_color", "red"), "unknown config key")
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, b ,"))
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
}
