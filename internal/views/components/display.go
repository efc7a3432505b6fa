package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CounterDisplay shows the beats and tempo values with their captions.
type CounterDisplay struct {
	container    *fyne.Container
	beatsCaption *widget.Label
	beatsValue   *widget.Label
	tempoCaption *widget.Label
	tempoValue   *widget.Label
}

// NewCounterDisplay creates the counter display. Captions are the
// localized "Beats"/"Tempo" strings.
func NewCounterDisplay(beatsCaption, tempoCaption string) *CounterDisplay {
	cd := &CounterDisplay{}
	cd.createComponents(beatsCaption, tempoCaption)
	cd.buildLayout()
	return cd
}

func (cd *CounterDisplay) createComponents(beatsCaption, tempoCaption string) {
	cd.beatsCaption = widget.NewLabelWithStyle(beatsCaption, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	cd.beatsValue = widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	cd.tempoCaption = widget.NewLabelWithStyle(tempoCaption, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	cd.tempoValue = widget.NewLabelWithStyle("0", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
}

func (cd *CounterDisplay) buildLayout() {
	cd.container = container.NewVBox(
		cd.beatsValue,
		cd.beatsCaption,
		widget.NewSeparator(),
		cd.tempoValue,
		cd.tempoCaption,
	)
}

// GetContainer returns the root container for layout embedding.
func (cd *CounterDisplay) GetContainer() *fyne.Container {
	return cd.container
}

// GetBeats returns the displayed beats text.
func (cd *CounterDisplay) GetBeats() string {
	return cd.beatsValue.Text
}

// GetTempo returns the displayed tempo text.
func (cd *CounterDisplay) GetTempo() string {
	return cd.tempoValue.Text
}

// SetBeats updates the beats-per-measure value.
func (cd *CounterDisplay) SetBeats(beats int) {
	cd.beatsValue.SetText(strconv.Itoa(beats))
}

// SetTempo updates the beats-per-minute value.
func (cd *CounterDisplay) SetTempo(tempo int) {
	cd.tempoValue.SetText(strconv.Itoa(tempo))
}
