package tui

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("boardkit console") + "\n")
	b.WriteString(dim.Render("letters select, number row sets value, arrows nudge, BKSP disable servo, ENTER cycle led colour, TAB config, SPACE stop, ESC quit") + "\n\n")

	if m.showConfig {
		b.WriteString(yellow.Render("config") + "\n")
		b.WriteString(white.Render(m.configDoc))
		b.WriteString("\n" + dim.Render("press TAB to return") + "\n")
		return b.String()
	}

	if motors := m.board.Motors(); len(motors) > 0 {
		b.WriteString(yellow.Render("Motors") + "\n")
		for i, index := range motors {
			c, _ := m.board.Motor(index)
			label := fmt.Sprintf("[%c] motor %d", keyOrSpace(motorKeys, i), index)
			value := "  --  "
			if v, ok := c.Get(); ok {
				value = fmt.Sprintf("%+.2f", v)
			}
			extra := ""
			if c.Invert() {
				extra += " inv"
			}
			if c.Scale() != 1 {
				extra += fmt.Sprintf(" x%.2f", c.Scale())
			}
			b.WriteString(m.row(kindMotor, index, label, green.Render(value)+dim.Render(extra)))
		}
		b.WriteString("\n")
	}

	if servos := m.board.Servos(); len(servos) > 0 {
		b.WriteString(yellow.Render("Servos") + "\n")
		for i, index := range servos {
			c, _ := m.board.Servo(index)
			label := fmt.Sprintf("[%c] servo %d", keyOrSpace(servoKeys, i), index)
			value := dim.Render("disabled")
			if v, ok := c.Get(); ok {
				value = green.Render(fmt.Sprintf("%+.2f", v))
			}
			min, max := c.PulseRange()
			b.WriteString(m.row(kindServo, index, label, value+dim.Render(fmt.Sprintf(" %d-%dus", min, max))))
		}
		b.WriteString("\n")
	}

	if adcs := m.board.ADCs(); len(adcs) > 0 {
		b.WriteString(yellow.Render("ADC Channels") + "\n")
		for i, index := range adcs {
			label := fmt.Sprintf("[%c] adc %d", keyOrSpace(adcKeys, i), index)
			value := green.Render(fmt.Sprintf("%6.2fv", m.adcValues[index]))
			b.WriteString(m.row(kindADC, index, label, value))
		}
		if ref, ok := m.selected(); ok && ref.kind == kindADC {
			if h := m.adcHistory[ref.index]; len(h) > 1 {
				b.WriteString(dim.Render(asciigraph.Plot(h,
					asciigraph.Height(4),
					asciigraph.Width(min(m.width-10, 50)),
					asciigraph.Precision(2))) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if leds := m.board.LEDs(); len(leds) > 0 {
		b.WriteString(yellow.Render("LEDs") + "\n")
		for _, index := range leds {
			c, _ := m.board.LED(index)
			h, s, v := c.GetHSV()
			label := fmt.Sprintf("    led %d", index)
			value := green.Render(fmt.Sprintf("hsv(%.2f, %.2f, %.2f)", h, s, v)) +
				dim.Render(fmt.Sprintf(" bri %.2f", c.Brightness()))
			b.WriteString(m.row(kindLED, index, label, value))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(red.Render(m.status) + "\n")
	}
	return b.String()
}

// row renders one channel line, highlighting the selected channel.
func (m Model) row(k kind, index int, label, value string) string {
	marker := "  "
	style := white
	if ref, ok := m.selected(); ok && ref.kind == k && ref.index == index {
		marker = selBox.Render("> ")
		style = selBox
	}
	return fmt.Sprintf("%s%s  %s\n", marker, style.Render(label), value)
}

func keyOrSpace(keys []rune, i int) rune {
	if i < len(keys) {
		return keys[i]
	}
	return ' '
}
