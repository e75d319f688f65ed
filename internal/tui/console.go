// Package tui is the interactive console for a composed board: select a
// channel with the keyboard rows, set values with the number row, watch
// ADC channels stream, and stop everything with space.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/boardkit/internal/board"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	selBox = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
)

// Channel selection rows, one keyboard row per kind.
var (
	motorKeys = []rune("qwertyuiop")
	servoKeys = []rune("asdfghjkl")
	adcKeys   = []rune("zxcvbnm")
)

// The number row maps to values -1.0 .. 1.0 in steps of 0.2.
var valueKeys = []rune("1234567890-")

// Named colours cycled with enter on a selected LED.
var ledCycle = []string{"red", "orange", "yellow", "green", "cyan", "blue", "purple", "magenta", "white"}

type kind int

const (
	kindMotor kind = iota
	kindServo
	kindADC
	kindLED
)

func (k kind) String() string {
	switch k {
	case kindMotor:
		return "motor"
	case kindServo:
		return "servo"
	case kindADC:
		return "adc"
	default:
		return "led"
	}
}

type channelRef struct {
	kind  kind
	index int
}

type Model struct {
	board *board.Board

	channels []channelRef
	cursor   int

	adcValues  map[int]float64
	adcHistory map[int][]float64

	ledCyclePos int
	showConfig  bool
	configDoc   string
	status      string

	width  int
	height int
}

// New builds the console model for a composed board.
func New(b *board.Board) Model {
	m := Model{
		board:      b,
		adcValues:  map[int]float64{},
		adcHistory: map[int][]float64{},
		width:      80,
		height:     24,
	}
	for _, i := range b.Motors() {
		m.channels = append(m.channels, channelRef{kindMotor, i})
	}
	for _, i := range b.Servos() {
		m.channels = append(m.channels, channelRef{kindServo, i})
	}
	for _, i := range b.ADCs() {
		m.channels = append(m.channels, channelRef{kindADC, i})
	}
	for _, i := range b.LEDs() {
		m.channels = append(m.channels, channelRef{kindLED, i})
	}
	return m
}

// Run shows the console and blocks until the user exits. The board is
// stopped on the way out.
func Run(b *board.Board) error {
	p := tea.NewProgram(New(b), tea.WithAltScreen())
	_, err := p.Run()
	if stopErr := b.Stop(); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.pollADCs()
		return m, tick()
	}
	return m, nil
}

func (m *Model) pollADCs() {
	for _, index := range m.board.ADCs() {
		a, err := m.board.ADC(index)
		if err != nil {
			continue
		}
		v, err := a.Read(2)
		if err != nil {
			m.status = err.Error()
			continue
		}
		m.adcValues[index] = v
		h := append(m.adcHistory[index], v)
		if len(h) > 60 {
			h = h[1:]
		}
		m.adcHistory[index] = h
	}
}

func (m Model) selected() (channelRef, bool) {
	if len(m.channels) == 0 {
		return channelRef{}, false
	}
	return m.channels[m.cursor], true
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.channels)-1 {
			m.cursor++
		}
		return m, nil
	case " ":
		if err := m.board.Stop(); err != nil {
			m.status = err.Error()
		} else {
			m.status = "board stopped"
		}
		return m, nil
	case "tab":
		m.showConfig = !m.showConfig
		if m.showConfig {
			doc, err := m.board.ConfigYAML()
			if err != nil {
				m.status = err.Error()
				m.showConfig = false
			} else {
				m.configDoc = doc
			}
		}
		return m, nil
	case "left":
		m.nudge(-0.05)
		return m, nil
	case "right":
		m.nudge(0.05)
		return m, nil
	case "backspace":
		if ref, ok := m.selected(); ok && ref.kind == kindServo {
			if s, err := m.board.Servo(ref.index); err == nil {
				m.report(s.Disable())
			}
		}
		return m, nil
	case "enter":
		if ref, ok := m.selected(); ok && ref.kind == kindLED {
			if l, err := m.board.LED(ref.index); err == nil {
				name := ledCycle[m.ledCyclePos%len(ledCycle)]
				m.ledCyclePos++
				if err := l.SetNamed(name); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("led %d: %s", ref.index, name)
				}
			}
		}
		return m, nil
	}

	if len(key) == 1 {
		m.selectByKey(rune(key[0]))
		if v, ok := valueFor(rune(key[0])); ok {
			m.setValue(v)
		}
	}
	return m, nil
}

// selectByKey moves the cursor when a channel row key is pressed.
func (m *Model) selectByKey(r rune) {
	move := func(k kind, keys []rune) bool {
		pos := -1
		for i, c := range keys {
			if c == r {
				pos = i
				break
			}
		}
		if pos < 0 {
			return false
		}
		n := 0
		for i, ref := range m.channels {
			if ref.kind != k {
				continue
			}
			if n == pos {
				m.cursor = i
				return true
			}
			n++
		}
		return false
	}
	if move(kindMotor, motorKeys) {
		return
	}
	if move(kindServo, servoKeys) {
		return
	}
	move(kindADC, adcKeys)
}

func valueFor(r rune) (float64, bool) {
	for i, c := range valueKeys {
		if c == r {
			return float64(i)/5.0 - 1.0, true
		}
	}
	return 0, false
}

// setValue applies a value from the number row to the selected channel.
// Motors and servos take it as-is; LEDs map it onto brightness 0..1.
func (m *Model) setValue(v float64) {
	ref, ok := m.selected()
	if !ok {
		return
	}
	switch ref.kind {
	case kindMotor:
		if c, err := m.board.Motor(ref.index); err == nil {
			m.report(c.Set(v))
		}
	case kindServo:
		if c, err := m.board.Servo(ref.index); err == nil {
			m.report(c.Set(v))
		}
	case kindLED:
		if c, err := m.board.LED(ref.index); err == nil {
			m.report(c.SetBrightness((v + 1) / 2))
		}
	}
}

// nudge shifts the selected channel by a small step: motor/servo value, or
// LED hue.
func (m *Model) nudge(step float64) {
	ref, ok := m.selected()
	if !ok {
		return
	}
	switch ref.kind {
	case kindMotor:
		if c, err := m.board.Motor(ref.index); err == nil {
			v, _ := c.Get()
			m.report(c.Set(v + step))
		}
	case kindServo:
		if c, err := m.board.Servo(ref.index); err == nil {
			v, _ := c.Get()
			m.report(c.Set(v + step))
		}
	case kindLED:
		if c, err := m.board.LED(ref.index); err == nil {
			h, s, v := c.GetHSV()
			if v == 0 {
				s, v = 1, 1
			}
			m.report(c.SetHSV(h+step, s, v))
		}
	}
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
	}
}
