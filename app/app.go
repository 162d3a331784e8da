package app

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/config"
	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/theme"
	"github.com/kastheco/codecolor/ui"
	"github.com/kastheco/codecolor/ui/overlay"
)

const meterFrame = time.Second / 20

// Run starts the interactive editor and blocks until the user quits.
// store may be nil, in which case the library actions are disabled.
func Run(ctx context.Context, cfg config.Config, st *theme.State, store themestore.Store) error {
	p := tea.NewProgram(newHome(ctx, cfg, st, store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateEditColor is shown while the color input overlay is open.
	stateEditColor
	// statePickRole picks which role to remap.
	statePickRole
	// statePickSlot picks the slot the pending role maps to.
	statePickSlot
	// stateSaveTheme picks or names a library entry to save into.
	stateSaveTheme
	// stateLoadTheme picks a library entry to load.
	stateLoadTheme
	// stateConfirm is shown while a reset awaits confirmation.
	stateConfirm
)

type panel int

const (
	panelContrast panel = iota
	panelHarmonies
	panelRamps
	panelCount
)

func (p panel) String() string {
	switch p {
	case panelContrast:
		return "Contrast"
	case panelHarmonies:
		return "Harmonies"
	case panelRamps:
		return "Ramps"
	default:
		return ""
	}
}

// meterTickMsg advances the contrast meter animation by one frame.
type meterTickMsg struct{}

type home struct {
	ctx       context.Context
	appConfig config.Config
	state     state

	themeState *theme.State
	store      themestore.Store

	// selected indexes theme.AllSlots().
	selected   int
	mode       colorutil.Mode
	focusPanel panel

	meter        *ui.MeterAnim
	meterRunning bool

	colorInputOverlay *overlay.ColorInputOverlay
	pickerOverlay     *overlay.PickerOverlay
	confirmOverlay    *overlay.ConfirmOverlay
	// confirmAction runs when the confirm overlay is answered "yes".
	confirmAction func() tea.Cmd
	// pendingRole is the role chosen in statePickRole.
	pendingRole theme.Role

	help      help.Model
	statusMsg string

	width, height int

	// clipboardWrite is swapped out in tests.
	clipboardWrite func(string) error
}

func newHome(ctx context.Context, cfg config.Config, st *theme.State, store themestore.Store) *home {
	mode := cfg.DefaultMode
	if mode == "" {
		mode = colorutil.ModeHex
	}
	h := &home{
		ctx:            ctx,
		appConfig:      cfg,
		state:          stateDefault,
		themeState:     st,
		store:          store,
		mode:           mode,
		meter:          ui.NewMeterAnim(),
		help:           help.New(),
		clipboardWrite: clipboard.WriteAll,
	}
	h.retargetMeter()
	return h
}

func (m *home) Init() tea.Cmd {
	return m.startMeter()
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case meterTickMsg:
		if m.meter.Tick() {
			return m, tickMeter()
		}
		m.meterRunning = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if m.pickerOverlay != nil {
		m.pickerOverlay.SetSize(overlayWidth(msg.Width), msg.Height)
	}
	if m.colorInputOverlay != nil {
		m.colorInputOverlay.SetWidth(overlayWidth(msg.Width))
	}
}

func overlayWidth(termWidth int) int {
	if termWidth <= 0 {
		return 50
	}
	return max(30, min(60, termWidth-10))
}

func tickMeter() tea.Cmd {
	return tea.Tick(meterFrame, func(time.Time) tea.Msg {
		return meterTickMsg{}
	})
}

// startMeter schedules animation frames unless a tick loop is already running.
func (m *home) startMeter() tea.Cmd {
	if m.meterRunning || m.meter.Settled() {
		return nil
	}
	m.meterRunning = true
	return tickMeter()
}

// isUserInOverlay returns true if the user is interacting with an overlay.
func (m *home) isUserInOverlay() bool {
	return m.state != stateDefault
}

func (m *home) selectedSlot() theme.Slot {
	return theme.AllSlots()[m.selected]
}

func (m *home) selectedHex() string {
	return m.themeState.Active().Get(m.selectedSlot())
}

func (m *home) targetRatio() float64 {
	if m.appConfig.TargetRatio > 0 {
		return m.appConfig.TargetRatio
	}
	return colorutil.DefaultTargetRatio
}

// retargetMeter points the meter at the selected slot's contrast against bg0.
func (m *home) retargetMeter() {
	t := m.themeState.Active()
	m.meter.SetTarget(colorutil.ContrastRatio(t.Get(m.selectedSlot()), t.Get(theme.Bg0)))
}

