package main

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpitools/picoctl/internal/app"
	"github.com/rpitools/picoctl/internal/config"
	"github.com/rpitools/picoctl/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "picoctl",
	Short: "Discover and manage Raspberry Pi Pico boards over USB",
	Long: "picoctl finds attached RP2040/RP2350 boards (serial ports and BOOTSEL " +
		"volumes), copies files and UF2 firmware to and from their storage volumes, " +
		"and switches boards into BOOTSEL mode via picotool.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		app.NewDevicesCommand(),
		app.NewPutFSCommand(),
		app.NewToolVersionCommand(),
		app.NewPushCommand(),
		app.NewPullCommand(),
		app.NewFirmwareCommand(),
		app.NewConfigCommand(),
	)
}

func main() {
	logger.Init("")
	if err := config.InitConfig(); err != nil {
		log.Warnf("could not load config: %v", err)
	}
	logger.Init(config.GetConfig().LogLevel)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if logger.DebugEnabled() {
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
		}
		os.Exit(1)
	}
}
