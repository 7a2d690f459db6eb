package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/simulation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

func renderReport(rep *simulation.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("boids headless run"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"boids", fmt.Sprintf("%d", rep.Population)},
		{"ticks", fmt.Sprintf("%d", rep.Ticks)},
		{"canvas", fmt.Sprintf("%.0fx%.0f", rep.Width, rep.Height)},
		{"boundary", rep.Mode.String()},
		{"seed", fmt.Sprintf("%d", rep.Seed)},
		{"shapes", fmt.Sprintf("%d", rep.Triangles)},
		{"bounds", fmt.Sprintf("%s - %s", rep.Min, rep.Max)},
		{"digest", rep.DigestHex()},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", r[0])), r[1])
	}

	if len(rep.MeanSpeed) > 1 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(rep.MeanSpeed,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("mean speed per tick")))
	}
	return panelStyle.Render(b.String())
}
