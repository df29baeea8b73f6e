package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"foodmap/internal/config"
	"foodmap/internal/tui"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}
	m := tui.New(cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
