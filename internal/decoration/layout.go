package decoration

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout renders view with the given overlays arranged around it.
//
// Left and Right overlays are joined to the element's first line. Top and
// bottom overlays get their own line, aligned with the element's left or
// right edge. Overlays at the same position are drawn in the order given.
func Layout(view string, overlays []*Overlay) string {
	if len(overlays) == 0 {
		return view
	}

	width := lipgloss.Width(view)
	var topLeft, topRight, left, right, bottomLeft, bottomRight []*Overlay
	for _, o := range overlays {
		switch o.Position {
		case TopLeft:
			topLeft = append(topLeft, o)
		case TopRight:
			topRight = append(topRight, o)
		case Left:
			left = append(left, o)
		case Right:
			right = append(right, o)
		case BottomLeft:
			bottomLeft = append(bottomLeft, o)
		case BottomRight:
			bottomRight = append(bottomRight, o)
		}
	}

	var b strings.Builder
	if row := edgeRow(topLeft, topRight, width); row != "" {
		b.WriteString(row)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("\n", maxYOffset(topLeft, topRight)))
	}

	lines := strings.Split(view, "\n")
	lines[0] = inline(left, true) + lines[0] + inline(right, false)
	b.WriteString(strings.Join(lines, "\n"))

	if row := edgeRow(bottomLeft, bottomRight, width); row != "" {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("\n", maxYOffset(bottomLeft, bottomRight)))
		b.WriteString(row)
	}
	return b.String()
}

func inline(overlays []*Overlay, leading bool) string {
	var b strings.Builder
	for _, o := range overlays {
		pad := spaces(o.XOffset)
		if leading {
			b.WriteString(o.Marker.Render() + " " + pad)
		} else {
			b.WriteString(" " + pad + o.Marker.Render())
		}
	}
	return b.String()
}

func markers(overlays []*Overlay) string {
	var b strings.Builder
	for _, o := range overlays {
		b.WriteString(spaces(o.XOffset))
		b.WriteString(o.Marker.Render())
	}
	return b.String()
}

func edgeRow(leftSide, rightSide []*Overlay, width int) string {
	l := markers(leftSide)
	r := markers(rightSide)
	if l == "" && r == "" {
		return ""
	}
	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 1 {
		gap = 1
	}
	if r == "" {
		return l
	}
	return l + strings.Repeat(" ", gap) + r
}

// spaces returns n blanks. Negative offsets pull a marker back onto the
// element edge; there is no column left of it to move to.
func spaces(n int) string {
	return strings.Repeat(" ", max(n, 0))
}

func maxYOffset(groups ...[]*Overlay) int {
	n := 0
	for _, g := range groups {
		for _, o := range g {
			if o.YOffset > n {
				n = o.YOffset
			}
		}
	}
	return n
}
