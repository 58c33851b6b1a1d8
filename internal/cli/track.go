package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/analysis"
	"github.com/seamusw/cubesolver/internal/ble"
	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/protocol"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/internal/tracker"
	"github.com/seamusw/cubesolver/pkg/types"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track a GoCube smart cube interactively",
	Long: `Start an interactive TUI that follows the physical moves of a GoCube
over Bluetooth and solves the tracked state on demand.

Start with the cube SOLVED so the tracked state matches the physical cube,
or press 'r' to re-sync after solving it by hand.

Keyboard shortcuts:
  s       - Solve the current tracked state
  r       - Reset tracking (marks the cube as solved)
  b       - Refresh battery level
  f       - Flash the backlight
  d       - Toggle the cube net display
  q/Esc   - Quit`,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

// The solve triggered from the TUI runs without a pattern database, so a
// deeply scrambled cube could search for a long time. Cap it.
const trackSolveTimeout = 30 * time.Second

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solutionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Messages
type tickMsg time.Time
type bleConnectedMsg struct{ name string }
type bleDisconnectedMsg struct{}
type bleMessageMsg struct{ msg *protocol.Message }
type solveDoneMsg struct {
	res *solver.Result[types.Move]
	err error
}

// Model
type trackModel struct {
	// BLE
	client        *ble.Client
	connected     bool
	deviceName    string
	battery       int
	eventChan     chan tea.Msg
	scanResults   []ble.ScanResult // Pre-scanned devices
	prescanClient *ble.Client      // Client used for pre-scan

	// State
	stateFile    *tracker.StateFile
	cubeTracker  *tracker.Tracker
	sessionStart time.Time
	upFace       types.Face
	frontFace    types.Face

	// Solving
	solving  bool
	solution *solver.Result[types.Move]
	solveErr error

	// UI
	width    int
	height   int
	showCube bool
	err      error
	quitting bool
}

func newTrackModel(stateFile *tracker.StateFile, prescanClient *ble.Client, scanResults []ble.ScanResult) *trackModel {
	return &trackModel{
		stateFile:     stateFile,
		cubeTracker:   tracker.New(),
		sessionStart:  time.Now(),
		battery:       -1,
		eventChan:     make(chan tea.Msg, 100),
		prescanClient: prescanClient,
		scanResults:   scanResults,
	}
}

func (m *trackModel) Init() tea.Cmd {
	return tea.Batch(
		m.connectBLE(),
		m.tickCmd(),
		m.listenForEvents(),
	)
}

func (m *trackModel) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return <-m.eventChan
	}
}

func (m *trackModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *trackModel) connectBLE() tea.Cmd {
	return func() tea.Msg {
		// Must have prescan client and results - no scanning in TUI
		if m.prescanClient == nil || len(m.scanResults) == 0 {
			m.err = fmt.Errorf("no device found in pre-scan")
			return nil
		}

		client := m.prescanClient
		m.client = client

		// Set up callbacks BEFORE connecting
		client.SetMessageCallback(func(msg *protocol.Message) {
			select {
			case m.eventChan <- bleMessageMsg{msg: msg}:
			default:
				// Channel full, drop message
			}
		})
		client.SetDisconnectCallback(func() {
			select {
			case m.eventChan <- bleDisconnectedMsg{}:
			default:
			}
		})

		ctx := context.Background()
		results := m.scanResults

		// Prefer the last paired device if it showed up in the scan
		var target *ble.ScanResult
		if last := m.stateFile.LastDeviceID(); last != "" {
			for i := range results {
				if results[i].UUID == last {
					target = &results[i]
					break
				}
			}
		}
		if target == nil {
			target = &results[0]
		}

		if err := client.ConnectToResult(ctx, *target); err != nil {
			m.err = fmt.Errorf("connection failed: %w", err)
			return nil
		}

		// Orientation events show which way the cube is held; optional.
		client.EnableOrientation()

		return bleConnectedMsg{name: client.DeviceName()}
	}
}

func (m *trackModel) solveCurrent() tea.Cmd {
	start := m.cubeTracker.Cube()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), trackSolveTimeout)
		defer cancel()

		s := solver.New[cube.Cube, types.Move](cube.Rules{}, heuristic.FaceletDistance{})
		res, err := s.Solve(ctx, start)
		return solveDoneMsg{res: res, err: err}
	}
}

func (m *trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			if m.client != nil {
				m.client.Disconnect()
			}
			return m, tea.Quit

		case "s":
			if !m.solving {
				m.solving = true
				m.solution = nil
				m.solveErr = nil
				return m, m.solveCurrent()
			}

		case "r":
			m.cubeTracker.Reset()
			m.solution = nil
			m.solveErr = nil
			if m.client != nil {
				m.client.ResetSolved()
			}

		case "b":
			if m.client != nil {
				m.client.RequestBattery()
			}

		case "f":
			if m.client != nil {
				m.client.FlashBacklight()
			}

		case "d":
			m.showCube = !m.showCube
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.client != nil {
			m.battery = m.client.Battery()
		}
		return m, m.tickCmd()

	case bleConnectedMsg:
		m.connected = true
		m.deviceName = msg.name
		if m.stateFile != nil && m.client != nil {
			m.stateFile.SetLastDevice(m.client.DeviceUUID(), m.deviceName)
		}
		// Flash LED on connect (with slight delay for BLE stack to settle)
		if m.client != nil {
			go func() {
				time.Sleep(500 * time.Millisecond)
				m.client.FlashBacklight()
			}()
		}

	case bleDisconnectedMsg:
		m.connected = false
		m.deviceName = ""
		return m, m.listenForEvents()

	case bleMessageMsg:
		m.handleCubeMessage(msg.msg)
		return m, m.listenForEvents()

	case solveDoneMsg:
		m.solving = false
		m.solution = msg.res
		m.solveErr = msg.err
	}

	return m, nil
}

// handleCubeMessage folds one BLE message into the tracked state.
func (m *trackModel) handleCubeMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgTypeRotation:
		rotations, err := protocol.DecodeRotation(msg.Payload)
		if err != nil {
			m.err = err
			return
		}

		wasSolved := m.cubeTracker.IsSolved()
		ts := time.Since(m.sessionStart).Milliseconds()
		for _, mv := range protocol.RotationsToMoves(rotations, ts) {
			m.cubeTracker.ApplyMove(mv)
		}

		// A physical move invalidates any displayed solution.
		m.solution = nil
		m.solveErr = nil

		if !wasSolved && m.cubeTracker.IsSolved() && m.client != nil {
			m.client.FlashBacklight()
		}

	case protocol.MsgTypeOrientation:
		if o, err := protocol.DecodeOrientation(msg.Payload); err == nil {
			m.upFace = o.UpFace
			m.frontFace = o.FrontFace
		}
	}
}

func (m *trackModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GoCube Tracker"))
	b.WriteString("\n\n")

	// Connection status
	if m.connected {
		status := fmt.Sprintf("Connected: %s", m.deviceName)
		if m.battery >= 0 {
			status += fmt.Sprintf(" (Battery: %d%%)", m.battery)
		}
		b.WriteString(statusStyle.Render(status))
		if m.upFace != "" && m.frontFace != "" {
			b.WriteString(statusStyle.Render(fmt.Sprintf("  Holding: %s up, %s front", m.upFace, m.frontFace)))
		}
	} else if len(m.scanResults) == 0 {
		b.WriteString(errorStyle.Render("No device found - run again to retry"))
	} else {
		b.WriteString(errorStyle.Render("Connecting..."))
	}
	b.WriteString("\n\n")

	// Tracked cube state
	if m.cubeTracker.IsSolved() {
		b.WriteString(stateStyle.Render("Cube: SOLVED"))
	} else {
		bound := heuristic.FaceletDistance{}.Estimate(m.cubeTracker.Cube())
		b.WriteString(stateStyle.Render(fmt.Sprintf("Cube: scrambled (at least %d to solve)", bound)))
	}
	b.WriteString(fmt.Sprintf("   Moves tracked: %d\n", m.cubeTracker.MoveCount()))

	// Recent moves
	moves := m.cubeTracker.Moves()
	if len(moves) > 0 {
		b.WriteString("Moves: ")
		start := 0
		if len(moves) > 20 {
			start = len(moves) - 20
			b.WriteString("... ")
		}
		var notations []string
		for i := start; i < len(moves); i++ {
			notations = append(notations, moves[i].Notation())
		}
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Cube net
	if m.showCube {
		b.WriteString(renderCube(m.cubeTracker.Cube()))
		b.WriteString("\n")
	}

	// Solution
	if m.solving {
		b.WriteString(statusStyle.Render("Solving..."))
		b.WriteString("\n")
	} else if m.solveErr != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Solve failed: %v", m.solveErr)))
		b.WriteString("\n")
	} else if m.solution != nil {
		if m.solution.Length() == 0 {
			b.WriteString(solutionStyle.Render("Already solved"))
		} else {
			b.WriteString(solutionStyle.Render(fmt.Sprintf("Solution (%d moves): %s",
				m.solution.Length(), types.FormatMoves(m.solution.Moves))))
		}
		b.WriteString("\n")
	}

	// Error
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: s=solve  r=reset  b=battery  f=flash  d=cube  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func runTrack(cmd *cobra.Command, args []string) error {
	stateFile, err := tracker.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	// Pre-scan for GoCube devices BEFORE starting the TUI
	prescanClient, scanResults, err := scanForCube()
	if err != nil {
		return err
	}

	if len(scanResults) == 0 {
		fmt.Println("No GoCube devices found.")
		fmt.Println()
		fmt.Println("To fix this:")
		fmt.Println("  1. Rotate your cube to wake it up")
		fmt.Println("  2. Make sure it's not connected to your phone")
		fmt.Println("  3. Run this command again")
		return nil // Exit without entering TUI
	}

	model := newTrackModel(stateFile, prescanClient, scanResults)
	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(*trackModel); ok {
		printTrackSummary(m)
	}

	return nil
}

// printTrackSummary reports on the session's physical moves after the TUI
// exits.
func printTrackSummary(m *trackModel) {
	moves := m.cubeTracker.Moves()
	if len(moves) == 0 {
		return
	}

	elapsed := time.Since(m.sessionStart)
	durationMs := elapsed.Milliseconds()

	fmt.Println("Session summary")
	fmt.Println("---------------")
	fmt.Printf("Moves:         %d\n", len(moves))
	fmt.Printf("Duration:      %s\n", formatDuration(elapsed))
	fmt.Printf("Turns/sec:     %.2f\n", analysis.CalculateTPS(moves, durationMs))
	if pause := analysis.FindLongestPause(moves); pause > 0 {
		fmt.Printf("Longest pause: %s\n", formatDuration(time.Duration(pause)*time.Millisecond))
	}
	if profile := analysis.AnalyzeMovementProfile(moves); profile.MostUsedFace != "" {
		fmt.Printf("Busiest face:  %s (%d turns)\n",
			profile.MostUsedFace, profile.FaceCounts[profile.MostUsedFace])
	}
}
