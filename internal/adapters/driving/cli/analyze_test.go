package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetAnalyzeFlags() {
	analyzePing = ""
	analyzeScan = ""
	analyzePorts = ""
	analyzeSweep = ""
	analyzeDNS = ""
	analyzeOutput = ""
}

func TestAnalyzeCmd_NoFlags(t *testing.T) {
	defer resetAnalyzeFlags()

	_, err := execute(t, "analyze")
	assert.ErrorContains(t, err, "nothing to do")
}

func TestAnalyzeCmd_ScanRequiresPorts(t *testing.T) {
	defer resetAnalyzeFlags()

	_, err := execute(t, "analyze", "--scan", "10.0.0.5")
	assert.ErrorContains(t, err, "--scan requires --ports")
}

func TestAnalyzeCmd_BadPortSpec(t *testing.T) {
	defer resetAnalyzeFlags()

	_, err := execute(t, "analyze", "--scan", "127.0.0.1", "--ports", "http")
	assert.Error(t, err)
}

func TestJoinPorts(t *testing.T) {
	assert.Equal(t, "22, 80, 443", joinPorts([]int{22, 80, 443}))
	assert.Equal(t, "", joinPorts(nil))
}
