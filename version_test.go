package yamlschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	result := Version()
	assert.NotEmpty(t, result)
	assert.True(t, result == "dev" || strings.HasPrefix(result, "v"))
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "yamlschema/"+Version(), UserAgent())
}
