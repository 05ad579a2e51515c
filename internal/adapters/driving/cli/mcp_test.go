package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMCPCmd_Use(t *testing.T) {
	assert.Equal(t, "mcp", mcpCmd.Use)
}

func TestMCPCmd_Long(t *testing.T) {
	assert.Contains(t, mcpCmd.Long, "Model Context Protocol")
	assert.Contains(t, mcpCmd.Long, "stdin/stdout")
}

func TestMCPCmd_RejectsArgs(t *testing.T) {
	err := mcpCmd.Args(mcpCmd, []string{"extra"})

	assert.Error(t, err)
}
