// ktxinfo - Prints metadata for KTX texture containers.
//
// Supports both container versions and whole-file zstd-compressed files:
//
//	ktxinfo texture.ktx          # KTX1
//	ktxinfo texture.ktx2         # KTX2
//	ktxinfo texture.ktx2.zst     # zstd-wrapped container
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goopsie/go-ktx/pkg/ktx"
	"github.com/goopsie/go-ktx/pkg/ktxzstd"
)

func main() {
	verbose := flag.Bool("v", false, "log native stream I/O errors to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ktxinfo [-v] <file.ktx|file.ktx2[.zst]>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		ktx.SetLogger(slog.Default())
	}

	tex, err := openTexture(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ktxinfo: %v\n", err)
		os.Exit(1)
	}
	defer tex.Close()

	printInfo(tex)
}

func openTexture(path string) (*ktx.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(path, ".zst") {
		return ktxzstd.ReadTexture(f, 0)
	}

	// LoadImageData materializes the texture eagerly, so the stream can be
	// torn down before the texture is used.
	stream, err := ktx.NewStream(f)
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return ktx.NewTexture(&ktx.StreamSource{Stream: stream, Flags: ktx.LoadImageData})
}

func printInfo(tex *ktx.Texture) {
	fmt.Printf("dimensions:  %dx%dx%d (%dD)\n",
		tex.BaseWidth(), tex.BaseHeight(), tex.BaseDepth(), tex.NumDimensions())
	fmt.Printf("levels:      %d\n", tex.NumLevels())
	fmt.Printf("layers:      %d (array: %v)\n", tex.NumLayers(), tex.IsArray())
	fmt.Printf("faces:       %d (cubemap: %v)\n", tex.NumFaces(), tex.IsCubemap())
	fmt.Printf("compressed:  %v\n", tex.IsCompressed())
	fmt.Printf("data size:   %d bytes\n", tex.DataSize())

	switch v := tex.Versioned().(type) {
	case *ktx.Ktx1:
		fmt.Printf("container:   KTX1\n")
		fmt.Printf("gl format:   0x%04X (internal 0x%04X, base 0x%04X, type 0x%04X)\n",
			v.GLFormat(), v.GLInternalFormat(), v.GLBaseInternalFormat(), v.GLType())
		fmt.Printf("transcode:   needed=%v\n", v.NeedsTranscoding())
	case *ktx.Ktx2:
		fmt.Printf("container:   KTX2\n")
		fmt.Printf("vk format:   %d\n", v.VkFormat())
		fmt.Printf("supercmp:    %s\n", supercompressionName(v.SupercompressionScheme()))
		num, size := v.ComponentInfo()
		fmt.Printf("components:  %d x %d bytes (logical: %d)\n", num, size, v.NumComponents())
		fmt.Printf("oetf:        %d\n", v.OETF())
		fmt.Printf("premult:     %v\n", v.PremultipliedAlpha())
		fmt.Printf("transcode:   needed=%v\n", v.NeedsTranscoding())
		if v.IsVideo() {
			fmt.Printf("video:       duration=%d timescale=%d loops=%d\n",
				v.Duration(), v.Timescale(), v.LoopCount())
		}
	default:
		fmt.Printf("container:   unknown\n")
	}
}

func supercompressionName(s ktx.SuperCompressionScheme) string {
	switch s {
	case ktx.SSNone:
		return "none"
	case ktx.SSBasisLZ:
		return "BasisLZ"
	case ktx.SSZstd:
		return "Zstandard"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}
