package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gostonefire/coursecatalog/internal/config"
	"github.com/gostonefire/coursecatalog/internal/console"
	"github.com/gostonefire/coursecatalog/internal/logger"
)

// ExitError - Error carrying the process exit code
type ExitError struct {
	Code    int
	Message string
}

// Error - Returns the message
func (E *ExitError) Error() string {
	return E.Message
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run - Parses flags, loads configuration and runs the console on the given streams
func run(in io.Reader, out, errOut io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("courseplanner", flag.ContinueOnError)
	flagSet.SetOutput(errOut)

	configFlag := flagSet.String("config", "config.yaml", "Path to the YAML configuration file.")
	dataFlag := flagSet.String("data", "", "Path to the course CSV file, overrides configuration.")
	tableSizeFlag := flagSet.Int64("table-size", 0, "Number of hash table buckets, overrides configuration.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: debug, info, warn or error, overrides configuration.")
	logPrettyFlag := flagSet.Bool("log-pretty", false, "Human readable log output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		return err
	}
	if *dataFlag != "" {
		cfg.Catalog.DataFile = *dataFlag
	}
	if *tableSizeFlag != 0 {
		cfg.Catalog.TableSize = *tableSizeFlag
	}
	if *logLevelFlag != "" {
		cfg.Logging.Level = *logLevelFlag
	}
	if *logPrettyFlag {
		cfg.Logging.Pretty = true
	}
	if err = cfg.Validate(); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logConfig := cfg.LoggerConfig()
	logConfig.Output = errOut
	log := logger.New(logConfig)
	log.Debug().Str("data_file", cfg.Catalog.DataFile).Int64("table_size", cfg.Catalog.TableSize).Msg("configuration loaded")

	c := console.New(in, out, console.Options{
		DataFile:  cfg.Catalog.DataFile,
		TableSize: cfg.Catalog.TableSize,
	}, log)

	return c.Run()
}
