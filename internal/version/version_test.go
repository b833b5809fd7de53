package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.BuildDate)
	assert.Equal(t, "unknown", info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
}

func TestBuildInfoString(t *testing.T) {
	info := BuildInfo{Version: "v1.2.0", BuildDate: "2026-10-01", GitCommit: "abc1234", GoVersion: "go1.24.2"}

	assert.Equal(t, "justify version v1.2.0 (commit: abc1234, built: 2026-10-01, go1.24.2)", info.String())
}
