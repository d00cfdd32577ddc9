package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpitools/picoctl/internal/mount"
)

func NewPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push <source> <mount> [targetPath]",
		Short: "Copy a host file or directory onto a board volume",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts mount.CopyOptions
			if len(args) == 3 {
				opts.TargetPath = args[2]
			}
			dest, err := mount.CopyInto(args[0], args[1], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied to %s\n", dest)
			return nil
		},
	}
}

func NewPullCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pull <mount> <sourcePath> <destination>",
		Short: "Copy a file or directory from a board volume to the host",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := mount.CopyOutOf(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied to %s\n", dest)
			return nil
		},
	}
}
