package app

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpitools/picoctl/internal/config"
	"github.com/rpitools/picoctl/internal/device"
)

// deviceListJSON is the machine-readable shape of one enumeration pass.
type deviceListJSON struct {
	Devices     []device.Device `json:"devices"`
	Errors      []errorJSON     `json:"errors"`
	GeneratedAt string          `json:"generatedAt"`
}

type errorJSON struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

func NewDevicesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List attached Pico boards (serial ports and BOOTSEL volumes)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetConfig()
			res := device.List(device.ListOptions{
				ExtraRoots:     cfg.SearchRoots,
				ExtraVendorIDs: cfg.VendorIDs,
			})

			if asJSON {
				return printDevicesJSON(cmd, res)
			}
			printDevices(cmd, res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the device list as JSON")
	return cmd
}

func printDevicesJSON(cmd *cobra.Command, res device.Result) error {
	out := deviceListJSON{
		Devices:     res.Devices,
		Errors:      make([]errorJSON, 0, len(res.Errors)),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, errorJSON{Source: e.Source, Message: e.Err.Error()})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printDevices(cmd *cobra.Command, res device.Result) {
	out := cmd.OutOrStdout()

	if len(res.Devices) == 0 {
		fmt.Fprintln(out, "No Pico boards found.")
	}
	for i, d := range res.Devices {
		switch d.Kind {
		case device.KindSerial:
			fmt.Fprintf(out, "%d. %s (serial)\n", i+1, d.Path)
			if d.Description != "" {
				fmt.Fprintf(out, "   Product: %s\n", d.Description)
			}
			if d.SerialNumber != "" {
				fmt.Fprintf(out, "   Serial:  %s\n", d.SerialNumber)
			}
			if d.VendorID != "" {
				fmt.Fprintf(out, "   USB ID:  %s:%s\n", d.VendorID, d.ProductID)
			}
		case device.KindStorage:
			fmt.Fprintf(out, "%d. %s (BOOTSEL volume)\n", i+1, d.MountPath)
			fmt.Fprintf(out, "   Board:   %s\n", d.Description)
			if d.BoardID != "" {
				fmt.Fprintf(out, "   Board-ID: %s\n", d.BoardID)
			}
		}
	}

	for _, e := range res.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s discovery failed: %v\n", e.Source, e.Err)
	}
}
