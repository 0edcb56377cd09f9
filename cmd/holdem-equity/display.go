package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/internal/equity"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	equityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("13"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

func displayBoard(board string) {
	if board == "" {
		return
	}
	fmt.Printf("%s\n%s\n\n", headerStyle.Render("board"), board)
}

func displayEquities(labels []string, out []equity.Equity, rounds int, elapsed time.Duration) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"))

	for i, e := range out {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			handStyle.Render(labels[i]),
			equityStyle.Render(fmt.Sprintf("%.2f%%", e.EquityFraction()*100)),
			winStyle.Render(fmt.Sprintf("%.2f%%", e.WinFraction()*100)),
			tieStyle.Render(fmt.Sprintf("%.2f%%", e.TieFraction()*100)))
	}
	w.Flush()

	fmt.Println()
	if rounds > 0 {
		fmt.Printf("%d rounds in %v\n", rounds, elapsed.Truncate(time.Millisecond))
	} else {
		fmt.Printf("exact enumeration in %v\n", elapsed.Truncate(time.Millisecond))
	}
}

func playerLabels(hero string, villains []string) []string {
	labels := make([]string, 0, len(villains)+1)
	labels = append(labels, fmt.Sprintf("hero (%s)", hero))
	for i, v := range villains {
		labels = append(labels, fmt.Sprintf("villain %d (%s)", i+1, v))
	}
	return labels
}
