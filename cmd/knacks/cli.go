package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/redsepro/knacks"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config *knacks.Config
	Logger *slog.Logger

	Index    knacks.IndexLoader
	Catalog  knacks.CatalogService
	Renderer knacks.DocumentRenderer
	Sessions knacks.SessionService

	// NewStore returns the store an export is written to.
	NewStore func(dir string) knacks.DocumentStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `name:"config" type:"path" help:"Config file (default: $XDG_CONFIG_HOME/knacks/knacks.toml)"`
	BaseURL string `name:"base-url" env:"KNACKS_BASE_URL" help:"Site serving the knacks"`
	DB      string `name:"db" env:"KNACKS_DB" type:"path" help:"Session database path"`
	LogFile string `name:"log-file" type:"path" help:"Log file of the interactive browser"`
	Verbose bool   `short:"v" help:"Log debug messages"`

	Browse BrowseCmd `cmd:"" default:"withargs" help:"Browse and search knacks interactively"`
	Search SearchCmd `cmd:"" help:"Search the knacks index"`
	List   ListCmd   `cmd:"" help:"List available knacks"`
	Export ExportCmd `cmd:"" help:"Export knacks as Markdown files"`
	Show   ConfigCmd `cmd:"" name:"config" help:"Print the effective configuration"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Text to search for"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir   string   `arg:"" type:"path" help:"Output directory, replaced on success"`
	Files []string `arg:"" optional:"" help:"Knack files to export (default: the whole list)"`
}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct{}
