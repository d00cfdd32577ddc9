package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpitools/picoctl/internal/config"
	"github.com/rpitools/picoctl/internal/picotool"
)

// toolDefaults resolves the picotool path and timeout, letting flags win
// over the config file.
func toolDefaults(toolPath string, timeoutMS int) (string, time.Duration) {
	cfg := config.GetConfig()
	if toolPath == "" {
		toolPath = cfg.ToolPath
	}
	if timeoutMS <= 0 {
		timeoutMS = cfg.TimeoutMS
	}
	return toolPath, time.Duration(timeoutMS) * time.Millisecond
}

func NewPutFSCommand() *cobra.Command {
	var opts picotool.RebootOptions
	var toolPath string
	var timeoutMS int

	cmd := &cobra.Command{
		Use:   "put-fs",
		Short: "Reboot a board from serial mode into BOOTSEL (filesystem) mode",
		Long: "Reboot a connected board into BOOTSEL mode via picotool, so that " +
			"its USB mass-storage volume appears. With no selector flags picotool " +
			"picks the only attached board and fails if there are several.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ToolPath, opts.Timeout = toolDefaults(toolPath, timeoutMS)

			out, err := picotool.Reboot(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SerialNumber, "serial", "", "select the board by serial number")
	cmd.Flags().IntVar(&opts.Bus, "bus", 0, "select the board by USB bus number")
	cmd.Flags().IntVar(&opts.Address, "address", 0, "select the board by USB device address")
	cmd.Flags().StringVar(&opts.Drive, "drive", "", "drive the volume should appear on")
	cmd.Flags().StringVar(&toolPath, "tool-path", "", "path to the picotool binary")
	cmd.Flags().IntVar(&timeoutMS, "timeout", 0, "picotool timeout in milliseconds")
	return cmd
}

func NewToolVersionCommand() *cobra.Command {
	var toolPath string
	var timeoutMS int

	cmd := &cobra.Command{
		Use:   "tool-version",
		Short: "Print the installed picotool version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, timeout := toolDefaults(toolPath, timeoutMS)
			out, err := picotool.Version(cmd.Context(), path, timeout)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&toolPath, "tool-path", "", "path to the picotool binary")
	cmd.Flags().IntVar(&timeoutMS, "timeout", 0, "picotool timeout in milliseconds")
	return cmd
}
