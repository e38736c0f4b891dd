package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/foxhands/generationTextSerega/client"
	"github.com/foxhands/generationTextSerega/config"
	"github.com/foxhands/generationTextSerega/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	serverURL := flag.String("url", client.GetEnvOrDefault("SERVER_URL", config.DefaultServerURL), "Article generator server URL")
	flag.Parse()

	// Create TUI model
	m := tui.NewModel(client.New(*serverURL))

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
