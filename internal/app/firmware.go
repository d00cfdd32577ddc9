package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpitools/picoctl/internal/mount"
)

func NewFirmwareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firmware",
		Short: "Move UF2 firmware images to and from a BOOTSEL volume",
	}

	var uploadName string
	upload := &cobra.Command{
		Use:   "upload <firmwarePath> <mount>",
		Short: "Copy a .uf2 image onto the volume (the bootloader flashes it)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := mount.UploadFirmware(args[0], args[1], uploadName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Uploaded firmware to %s\n", dest)
			return nil
		},
	}
	upload.Flags().StringVar(&uploadName, "name", "", "target filename on the volume")

	var downloadName string
	download := &cobra.Command{
		Use:   "download <mount> <destination>",
		Short: "Copy a .uf2 image off the volume",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := mount.DownloadFirmware(args[0], args[1], downloadName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Downloaded firmware to %s\n", dest)
			return nil
		},
	}
	download.Flags().StringVar(&downloadName, "name", "", "firmware filename on the volume (default: first .uf2 found)")

	info := &cobra.Command{
		Use:   "info <mount>",
		Short: "Show the board marker file and firmware images on the volume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vi, err := mount.Info(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Volume: %s\n", vi.MountPath)
			if vi.BoardID != "" {
				fmt.Fprintf(out, "Board-ID: %s\n", vi.BoardID)
			}
			if vi.Model != "" {
				fmt.Fprintf(out, "Model: %s\n", vi.Model)
			}
			if len(vi.Firmware) == 0 {
				fmt.Fprintln(out, "No firmware images on the volume.")
			} else {
				fmt.Fprintln(out, "Firmware:")
				for _, fw := range vi.Firmware {
					fmt.Fprintf(out, "  %s (%d bytes)\n", fw.Name, fw.Size)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(upload, download, info)
	return cmd
}
