package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the active edit mode and a general status message.
type StatusBar struct {
	container   *fyne.Container
	modeLabel   *widget.Label
	statusLabel *widget.Label
}

// NewStatusBar creates a status bar with an initial status message.
func NewStatusBar(status string) *StatusBar {
	sb := &StatusBar{}
	sb.createComponents(status)
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents(status string) {
	sb.modeLabel = widget.NewLabel("")
	sb.statusLabel = widget.NewLabel(status)
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.modeLabel,
		widget.NewSeparator(),
		sb.statusLabel,
	)
}

// GetContainer returns the root container for layout embedding.
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// GetMode returns the current edit-mode indicator text.
func (sb *StatusBar) GetMode() string {
	return sb.modeLabel.Text
}

// GetStatus returns the current status message.
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetMode updates the edit-mode indicator.
func (sb *StatusBar) SetMode(mode string) {
	sb.modeLabel.SetText(mode)
}

// SetStatus updates the general status message.
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}
