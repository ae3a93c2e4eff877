// Command bpcsctl embeds and extracts data from lossless images using BPCS
// steganography, and reports a carrier's estimated capacity.
//
// Usage:
//
//	bpcsctl embed --key <hex> [--alpha 0.3] --in <carrier> --payload <file> --out <stego>
//	bpcsctl extract --key <hex> [--alpha 0.3] --in <stego> [--out <file>]
//	bpcsctl capacity [--alpha 0.3] --in <carrier>
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/pixelveil-go/bpcs"
	"github.com/pixelveil-go/bpcs/imageio"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "embed":
		err = runEmbed(os.Args[2:])
	case "extract":
		err = runExtract(os.Args[2:])
	case "capacity":
		err = runCapacity(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "bpcsctl: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bpcsctl: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bpcsctl embed    --key <hex> [--alpha 0.3] --in <carrier> --payload <file> --out <stego>
  bpcsctl extract  --key <hex> [--alpha 0.3] --in <stego> [--out <file>]
  bpcsctl capacity [--alpha 0.3] --in <carrier>

Run "bpcsctl <command> -h" for command-specific options.
`)
}

func parseKey(s string) ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(s)
	if err != nil {
		return key, fmt.Errorf("invalid --key: %w", err)
	}
	if len(raw) != 32 {
		return key, fmt.Errorf("invalid --key: want 32 bytes (64 hex chars), got %d bytes", len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

func formatForPath(path string) imageio.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return imageio.BMP
	case ".tif", ".tiff":
		return imageio.TIFF
	default:
		return imageio.PNG
	}
}

func loadCarrier(path string) (*bpcs.Carrier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imageio.Decode(f)
}

func saveCarrier(path string, carrier *bpcs.Carrier) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return imageio.Encode(f, carrier, formatForPath(path))
}

func runEmbed(args []string) error {
	fs := pflag.NewFlagSet("embed", pflag.ContinueOnError)
	keyHex := fs.String("key", "", "32-byte placement key, hex-encoded (required)")
	alphaMin := fs.Float64("alpha", 0.3, "minimum complexity threshold")
	in := fs.String("in", "", "carrier image path (required)")
	payloadPath := fs.String("payload", "", "payload file path (required)")
	out := fs.String("out", "", "output stego image path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *keyHex == "" || *in == "" || *payloadPath == "" || *out == "" {
		return fmt.Errorf("embed: --key, --in, --payload, and --out are all required")
	}

	key, err := parseKey(*keyHex)
	if err != nil {
		return err
	}

	carrier, err := loadCarrier(*in)
	if err != nil {
		return fmt.Errorf("reading carrier: %w", err)
	}

	payload, err := os.ReadFile(*payloadPath)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	if err := bpcs.Embed(carrier, payload, *alphaMin, key); err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	if err := saveCarrier(*out, carrier); err != nil {
		return fmt.Errorf("writing stego image: %w", err)
	}
	return nil
}

func runExtract(args []string) error {
	fs := pflag.NewFlagSet("extract", pflag.ContinueOnError)
	keyHex := fs.String("key", "", "32-byte placement key, hex-encoded (required)")
	alphaMin := fs.Float64("alpha", 0.3, "minimum complexity threshold")
	in := fs.String("in", "", "stego image path (required)")
	out := fs.String("out", "-", `output path for recovered payload ("-" for stdout)`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *keyHex == "" || *in == "" {
		return fmt.Errorf("extract: --key and --in are required")
	}

	key, err := parseKey(*keyHex)
	if err != nil {
		return err
	}

	carrier, err := loadCarrier(*in)
	if err != nil {
		return fmt.Errorf("reading stego image: %w", err)
	}

	payload, err := bpcs.Extract(carrier, *alphaMin, key)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		defer f.Close()
		w = f
	}
	_, err = w.Write(payload)
	return err
}

func runCapacity(args []string) error {
	fs := pflag.NewFlagSet("capacity", pflag.ContinueOnError)
	alphaMin := fs.Float64("alpha", 0.3, "minimum complexity threshold")
	in := fs.String("in", "", "carrier image path (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return fmt.Errorf("capacity: --in is required")
	}

	carrier, err := loadCarrier(*in)
	if err != nil {
		return fmt.Errorf("reading carrier: %w", err)
	}

	fmt.Printf("%d\n", bpcs.EstimateCapacity(carrier, *alphaMin))
	return nil
}
