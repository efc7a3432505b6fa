package views

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"metronome/internal/i18n"
	"metronome/internal/metronome"
	"metronome/internal/views/components"
)

const repositoryURL = "https://github.com/metronome-app/metronome"

// MainView is the Fyne presentation layer. It translates button taps
// into the four metronome intents and renders every state the
// controller pushes back. It never mutates the state itself.
type MainView struct {
	window  fyne.Window
	tr      *i18n.Translator
	version string

	mainContainer *fyne.Container
	display       *components.CounterDisplay
	controls      *components.ControlBar
	status        *components.StatusBar

	intentHandler func(metronome.Intent)
}

// NewMainView builds the window content and menu.
func NewMainView(window fyne.Window, tr *i18n.Translator, version string) *MainView {
	mv := &MainView{
		window:  window,
		tr:      tr,
		version: version,
	}

	mv.initializeComponents()
	mv.buildLayout()
	mv.buildMenu()
	mv.setupEventHandlers()

	window.SetTitle(tr.T("app-title"))

	return mv
}

func (mv *MainView) initializeComponents() {
	mv.display = components.NewCounterDisplay(mv.tr.T("beats"), mv.tr.T("tempo"))
	mv.controls = components.NewControlBar(components.ControlLabels{
		Mode: mv.tr.T("tempo"),
		Up:   mv.tr.T("up"),
		Down: mv.tr.T("down"),
		Play: mv.tr.T("play"),
	})
	mv.status = components.NewStatusBar(mv.tr.T("ready"))
}

func (mv *MainView) buildLayout() {
	bottomArea := container.NewVBox(
		container.NewCenter(mv.controls.GetContainer()),
		widget.NewSeparator(),
		mv.status.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		nil,        // top
		bottomArea, // bottom
		nil,        // left
		nil,        // right
		container.NewCenter(mv.display.GetContainer()),
	)

	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) buildMenu() {
	viewMenu := fyne.NewMenu(mv.tr.T("view"),
		fyne.NewMenuItem(mv.tr.T("about"), func() {
			mv.ShowAbout()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(mv.tr.T("quit"), func() {
			fyne.CurrentApp().Quit()
		}),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(viewMenu))
}

func (mv *MainView) setupEventHandlers() {
	mv.controls.SetModeHandler(func() {
		mv.dispatch(metronome.IntentToggleMode)
	})
	mv.controls.SetUpHandler(func() {
		mv.dispatch(metronome.IntentUp)
	})
	mv.controls.SetDownHandler(func() {
		mv.dispatch(metronome.IntentDown)
	})
	mv.controls.SetPlayHandler(func() {
		mv.dispatch(metronome.IntentPlay)
	})
}

func (mv *MainView) dispatch(intent metronome.Intent) {
	if mv.intentHandler != nil {
		mv.intentHandler(intent)
	}
}

// SetIntentHandler connects the view to the controller. All four button
// taps funnel through it.
func (mv *MainView) SetIntentHandler(handler func(metronome.Intent)) {
	mv.intentHandler = handler
}

// RenderState refreshes every widget from a state snapshot.
func (mv *MainView) RenderState(s metronome.State) {
	mv.display.SetBeats(s.Beats)
	mv.display.SetTempo(s.Tempo)

	if s.TempoMode {
		mv.controls.SetModeLabel(mv.tr.T("tempo"))
		mv.status.SetMode(mv.tr.T("mode-tempo"))
	} else {
		mv.controls.SetModeLabel(mv.tr.T("beats"))
		mv.status.SetMode(mv.tr.T("mode-beats"))
	}
}

// ShowAbout opens the about dialog with the app title, version and a
// link to the repository.
func (mv *MainView) ShowAbout() {
	title := widget.NewLabelWithStyle(mv.tr.T("app-title"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	version := widget.NewLabelWithStyle(mv.version, fyne.TextAlignCenter, fyne.TextStyle{})

	content := container.NewVBox(title, version)
	if repo, err := url.Parse(repositoryURL); err == nil {
		link := widget.NewHyperlink(mv.tr.T("repository"), repo)
		link.Alignment = fyne.TextAlignCenter
		content.Add(link)
	}

	dialog.ShowCustom(mv.tr.T("about"), mv.tr.T("close"), content, mv.window)
}

// Show displays the main window.
func (mv *MainView) Show() {
	mv.window.Show()
}
