package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// ControlBar holds the four metronome buttons. The mode button's label
// names the counter Up/Down currently edit.
type ControlBar struct {
	container  *fyne.Container
	modeButton *widget.Button
	upButton   *widget.Button
	downButton *widget.Button
	playButton *widget.Button

	modeHandler func()
	upHandler   func()
	downHandler func()
	playHandler func()
}

// ControlLabels carries the localized button captions.
type ControlLabels struct {
	Mode string
	Up   string
	Down string
	Play string
}

// NewControlBar creates the control bar with the given captions.
func NewControlBar(labels ControlLabels) *ControlBar {
	cb := &ControlBar{}
	cb.createComponents(labels)
	cb.buildLayout()
	cb.setupEventHandlers()
	return cb
}

func (cb *ControlBar) createComponents(labels ControlLabels) {
	cb.modeButton = widget.NewButton(labels.Mode, nil)

	cb.upButton = widget.NewButtonWithIcon(labels.Up, theme.MoveUpIcon(), nil)
	cb.upButton.Importance = widget.HighImportance

	cb.downButton = widget.NewButtonWithIcon(labels.Down, theme.MoveDownIcon(), nil)
	cb.downButton.Importance = widget.HighImportance

	// Playback scheduling is not implemented yet; the button stays
	// enabled so the wiring is exercised, but pressing it does nothing.
	cb.playButton = widget.NewButtonWithIcon(labels.Play, theme.MediaPlayIcon(), nil)
}

func (cb *ControlBar) buildLayout() {
	cb.container = container.NewHBox(
		cb.modeButton,
		widget.NewSeparator(),
		cb.upButton,
		cb.downButton,
		widget.NewSeparator(),
		cb.playButton,
	)
}

func (cb *ControlBar) setupEventHandlers() {
	cb.modeButton.OnTapped = func() {
		if cb.modeHandler != nil {
			cb.modeHandler()
		}
	}
	cb.upButton.OnTapped = func() {
		if cb.upHandler != nil {
			cb.upHandler()
		}
	}
	cb.downButton.OnTapped = func() {
		if cb.downHandler != nil {
			cb.downHandler()
		}
	}
	cb.playButton.OnTapped = func() {
		if cb.playHandler != nil {
			cb.playHandler()
		}
	}
}

// GetContainer returns the root container for layout embedding.
func (cb *ControlBar) GetContainer() *fyne.Container {
	return cb.container
}

// SetModeLabel updates the mode button caption to the counter currently
// being edited.
func (cb *ControlBar) SetModeLabel(label string) {
	cb.modeButton.SetText(label)
}

// GetModeLabel returns the current mode button caption.
func (cb *ControlBar) GetModeLabel() string {
	return cb.modeButton.Text
}

func (cb *ControlBar) SetModeHandler(handler func()) {
	cb.modeHandler = handler
}

func (cb *ControlBar) SetUpHandler(handler func()) {
	cb.upHandler = handler
}

func (cb *ControlBar) SetDownHandler(handler func()) {
	cb.downHandler = handler
}

func (cb *ControlBar) SetPlayHandler(handler func()) {
	cb.playHandler = handler
}
