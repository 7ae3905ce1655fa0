package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.NotEmpty(t, info.GitCommit)
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "v1.2.3", GitCommit: "abc", BuildDate: "today", GoVersion: "go1.25", Platform: "linux/amd64"}.String()

	assert.Contains(t, s, "cp-cli v1.2.3")
	assert.Contains(t, s, "abc")
	assert.Contains(t, s, "linux/amd64")
}

func TestShortCommit(t *testing.T) {
	assert.Equal(t, "0123456789ab", shortCommit("0123456789abcdef"))
	assert.Equal(t, "abc", shortCommit("abc"))
}
