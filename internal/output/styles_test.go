package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.TerminalColor
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: colorGreen},
		{name: "modified returns yellow", status: StatusModified, wantFG: ColorYellow},
		{name: "unchanged returns faint", status: StatusUnchanged, wantDim: true},
		{name: "missing returns red", status: StatusMissing, wantFG: colorRed},
		{name: "extra returns cyan", status: StatusExtra, wantFG: ColorCyan},
		{name: "failed returns bold red", status: statusFailed, wantBold: true, wantFG: colorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	line := FormatFileLine("package.json", StatusCreated)
	assert.Contains(t, line, "package.json")
	assert.Contains(t, line, "created")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "done")
	assert.Contains(t, FormatCheckmark("done"), "✔")
}
