package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/gridls/internal/app"
	"github.com/kk-code-lab/gridls/internal/config"
	"github.com/kk-code-lab/gridls/internal/shellsetup"
)

const version = "0.1.0"

func printHelp() {
	fmt.Print(`gridls - keyboard-driven grid file browser

USAGE:
    gridls [OPTIONS]

OPTIONS:
    -h, --help       Show this help message and exit
    -v, --version    Print the version and exit
    --install        Write default config files and install the shell wrapper
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help":
			printHelp()
			return
		case "-v", "--version":
			fmt.Printf("gridls %s\n", version)
			return
		case "--install":
			if err := runInstall(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}

	err = app.Run()
	app.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInstall() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot determine home directory: %w", err)
	}
	configDir, err := config.Dir()
	if err != nil {
		return err
	}
	return shellsetup.Install(home, configDir, os.Stdout)
}
