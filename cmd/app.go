// Package cmd implements the CLI application to track coin purchases.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/c0debrain/coinwatch"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the cw tool.
// A main package will register them all, and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&quotesCmd{},
	&addCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", defaultConfigFile(), "Path to the trade book configuration file")

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".coinwatch", "config.yaml")
}

// DecodeBook reads the trade book from the app configuration file.
//
// On the first run the file does not exist yet, a starter one is written in
// its place and read back.
func DecodeBook() (*coinwatch.TradeBook, error) {
	f, err := os.Open(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, configuration file does not exist, writing a starter one instead")
		if err := writeStarterConfig(*configFile); err != nil {
			return nil, err
		}
		return coinwatch.DecodeBook(strings.NewReader(coinwatch.StarterConfig))
	}
	if err != nil {
		return nil, fmt.Errorf("could not open configuration file %q: %w", *configFile, err)
	}
	defer f.Close()

	book, err := coinwatch.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %q: %w", *configFile, err)
	}
	return book, nil
}

// EncodeBook writes the trade book back to the app configuration file.
func EncodeBook(book *coinwatch.TradeBook) error {
	f, err := os.Create(*configFile)
	if err != nil {
		return fmt.Errorf("could not write configuration file %q: %w", *configFile, err)
	}
	defer f.Close()
	return coinwatch.EncodeBook(f, book)
}

func writeStarterConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create configuration folder: %w", err)
	}
	if err := os.WriteFile(path, []byte(coinwatch.StarterConfig), 0644); err != nil {
		return fmt.Errorf("could not write starter configuration: %w", err)
	}
	return nil
}

// printMarkdown renders a markdown document for the terminal.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		// not a terminal worth styling, the raw markdown will do
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}
