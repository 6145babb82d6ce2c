package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVersions(t *testing.T) {
	assert.Equal(t, "-", FormatVersions(nil))
	assert.Equal(t, "2", FormatVersions([]int{2}))
	assert.Equal(t, "1, 2", FormatVersions([]int{1, 2}))
}
