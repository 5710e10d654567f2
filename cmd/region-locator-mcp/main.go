package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/region-locator-mcp/internal/config"
	"github.com/ironsheep/region-locator-mcp/internal/logger"
	"github.com/ironsheep/region-locator-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("region-locator-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "locate":
			os.Exit(runLocateCommand(os.Args[2:]))
		}
	}

	cfg, log := setup()

	log.Info("main", "starting region-locator-mcp", map[string]interface{}{
		"version":    Version,
		"build_time": BuildTime,
		"commit":     GitCommit,
	})

	srv := server.New(cfg, log)
	if err := srv.Run(); err != nil {
		log.Error("main", fmt.Errorf("server error: %w", err), nil)
		os.Exit(1)
	}
}

// setup loads configuration and builds the stderr logger. stdout is
// reserved for the MCP protocol and locate's JSON output.
func setup() (*config.Config, logger.Logger) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger.NewConsoleLogger(logger.ParseLevel(cfg.LogLevel))
}

func runLocateCommand(args []string) int {
	cfg, log := setup()
	code, err := runLocate(args, cfg, log, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "locate: %v\n", err)
	}
	return code
}

func printHelp() {
	fmt.Println("region-locator-mcp - locate printed codes and other high-contrast regions in images")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  region-locator-mcp                     Run the MCP server on stdin/stdout")
	fmt.Println("  region-locator-mcp locate [flags] IMG  Print the region found in IMG as JSON")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Locate flags:")
	fmt.Println("  -threshold N     Binarization threshold (default from environment, 70)")
	fmt.Println("  -annotate FILE   Write the image with the region outlined as PNG")
	fmt.Println("  -mask FILE       Write the dilated region mask as PNG")
	fmt.Println("  -color HEX       Outline colour for -annotate")
	fmt.Println()
	fmt.Println("Environment variables (also read from .env):")
	fmt.Println("  REGION_LOCATOR_LOG_LEVEL=debug        Log level: debug, info, warn, error")
	fmt.Println("  REGION_LOCATOR_THRESHOLD=70           Default binarization threshold")
	fmt.Println("  REGION_LOCATOR_OUTLINE_COLOR=#00FF00  Default outline colour")
	fmt.Println()
	fmt.Println("The server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
