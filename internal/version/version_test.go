package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
	assert.True(t, strings.HasPrefix(Info(), "enumfrom "+Version+" (commit: "))
	assert.Equal(t, Version, Short())
}
