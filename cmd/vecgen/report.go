package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vec128/vec"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the capability model resolved on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(w, "dispatch:   %s (level %d)\n", vec.CurrentName(), vec.CurrentLevel())
			fmt.Fprintf(w, "unaligned:  %v\n", vec.HasUnalignedAccess())
			fmt.Fprintf(w, "extended:   %v\n", vec.HasExtendedISA())
			fmt.Fprintf(w, "crypto:     %v\n", vec.HasCrypto())
			fmt.Fprintf(w, "big-endian: %v\n", vec.HostBigEndian())
			return nil
		},
	}
}
