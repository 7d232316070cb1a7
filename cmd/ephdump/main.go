// Command ephdump lists the chunks of an EPHE ephemeris tile file and
// optionally decodes the tile header and compressed block sizes found in
// each chunk payload.
package main

import (
	"fmt"
	"os"

	"github.com/bsm/ephtile"
	"github.com/spf13/cobra"
)

var (
	flagVerify bool
	flagTiles  bool
)

func main() {
	cmd := &cobra.Command{
		Use:           "ephdump FILE",
		Short:         "Inspect an EPHE ephemeris tile file",
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().BoolVar(&flagVerify, "verify", false, "verify chunk checksums")
	cmd.Flags().BoolVar(&flagTiles, "tiles", false, "decode tile headers inside each chunk")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ephdump:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	rdr, err := ephtile.NewReader(data, &ephtile.ReaderOptions{VerifyChecksums: flagVerify})
	if err != nil {
		return err
	}

	return rdr.Walk(func(typ string, data []byte) error {
		fmt.Printf("%-4s %10d bytes", typ, len(data))
		if flagTiles {
			printTile(data)
		}
		fmt.Println()
		return nil
	})
}

func printTile(data []byte) {
	buf := ephtile.NewBuffer(data)
	hdr, err := ephtile.ReadTileHeader(buf)
	if err != nil {
		fmt.Printf("  (no tile header)")
		return
	}
	fmt.Printf("  v%d order=%d pix=%d", hdr.Version, hdr.Order, hdr.Pix)

	block, err := ephtile.ReadCompressedBlock(buf)
	if err != nil {
		fmt.Printf("  (no data block: %v)", err)
		return
	}
	fmt.Printf("  block=%dB", len(block))
}
