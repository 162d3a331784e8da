package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/codecolor/colorutil"
)

// MaxRatio is the largest possible WCAG contrast ratio.
const MaxRatio = 21.0

// MeterAnim drives a spring-physics animation of the contrast meter toward
// the current ratio. Retargeting mid-flight keeps the velocity, so rapid
// edits glide instead of jumping.
type MeterAnim struct {
	spring  harmonica.Spring
	pos     float64
	vel     float64
	target  float64
	settled bool
}

// NewMeterAnim creates a meter resting at ratio 1.
func NewMeterAnim() *MeterAnim {
	return &MeterAnim{
		spring:  harmonica.NewSpring(harmonica.FPS(20), 4.0, 0.8),
		pos:     1,
		target:  1,
		settled: true,
	}
}

// SetTarget points the meter at ratio, clamped to [1, MaxRatio].
func (m *MeterAnim) SetTarget(ratio float64) {
	ratio = math.Max(1, math.Min(MaxRatio, ratio))
	if ratio == m.target && m.settled {
		return
	}
	m.target = ratio
	m.settled = false
}

// Tick advances the spring by one frame. Returns true while still animating.
func (m *MeterAnim) Tick() bool {
	if m.settled {
		return false
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)

	if math.Abs(m.pos-m.target) < 0.01 && math.Abs(m.vel) < 0.01 {
		m.pos = m.target
		m.vel = 0
		m.settled = true
	}
	return !m.settled
}

// Value returns the current animated ratio, clamped to [1, MaxRatio].
func (m *MeterAnim) Value() float64 {
	return math.Max(1, math.Min(MaxRatio, m.pos))
}

// Target returns the ratio the meter is moving toward.
func (m *MeterAnim) Target() float64 {
	return m.target
}

// Settled returns true once the spring has come to rest.
func (m *MeterAnim) Settled() bool {
	return m.settled
}

// Render draws the meter as a width-cell bar with tick marks at the 3, 4.5
// and 7 thresholds.
func (m *MeterAnim) Render(width int) string {
	if width < 4 {
		width = 4
	}
	filled := int(math.Round((m.Value() - 1) / (MaxRatio - 1) * float64(width)))

	color := colorLove
	switch v := m.Value(); {
	case v >= 4.5:
		color = colorPine
	case v >= 3:
		color = colorGold
	}
	fill := lipgloss.NewStyle().Foreground(color)

	marks := map[int]bool{
		thresholdCell(3, width):                            true,
		thresholdCell(colorutil.DefaultTargetRatio, width): true,
		thresholdCell(7, width):                            true,
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			b.WriteString(fill.Render("█"))
		case marks[i]:
			b.WriteString(mutedStyle.Render("┊"))
		default:
			b.WriteString(mutedStyle.Render("░"))
		}
	}
	return b.String()
}

func thresholdCell(ratio float64, width int) int {
	return int(math.Round((ratio - 1) / (MaxRatio - 1) * float64(width)))
}
