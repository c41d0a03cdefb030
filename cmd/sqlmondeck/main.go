// Command sqlmondeck generates the SQL Server Monitoring Solution presentation.
//
// Usage:
//
//	sqlmondeck                     read sqlmondeck.yaml from ./ or ~/.config/sqlmondeck
//	sqlmondeck -config deck.yaml   read an explicit config file
//
// Settings can also be given as SQLMONDECK_* environment variables.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"sqlmondeck/config"
	"sqlmondeck/logger"
	"sqlmondeck/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sqlmondeck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	log := logger.NewLogger()
	if cfg.LogDir != "" {
		if err := log.Init(cfg.LogDir); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	defer log.Close()

	res, err := pipeline.Run(cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Presentation saved to: %s\n", res.FinalPath)
	fmt.Fprintf(stdout, "Slides: %d\n", res.Slides)
	return 0
}
