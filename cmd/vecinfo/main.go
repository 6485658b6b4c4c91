// vecinfo is a CLI utility for inspecting circuit vector files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Hanbunko/dctqvec/pkg/imaging"
	"github.com/Hanbunko/dctqvec/pkg/raster"
	"github.com/Hanbunko/dctqvec/pkg/vector"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "verify":
		cmdVerify(args)
	case "export":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vecinfo - circuit vector file utility

Usage:
  vecinfo <command> [options]

Commands:
  info <vectors.json[.zst]>    Show artifact summary and coefficient stats
  verify <vectors.json[.zst]>  Validate shape, domains and rebuild consistency
  export <vectors.json[.zst]>  Export the embedded grids as PNG images

Examples:
  vecinfo info hd_vectors.json
  vecinfo verify -shape-only hd_vectors.json.zst
  vecinfo verify -image frame.png hd_vectors.json
  vecinfo export -original source.png hd_vectors.json`)
}

func readSet(path string) *vector.Set {
	set, err := vector.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return set
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vecinfo info <vectors.json[.zst]>")
		os.Exit(1)
	}

	if err := printInfo(args[0], readSet(args[0])); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printInfo writes the artifact summary to stdout. Each grid is reported
// under its own guard, so a truncated artifact still gets a summary of
// whatever it holds before the error comes back.
func printInfo(path string, set *vector.Set) error {
	fmt.Printf("Artifact:  %s\n", path)
	fmt.Printf("Expected:  %d rows × %d words\n", vector.Rows, vector.WordsPerRow)
	for _, grid := range []struct {
		name string
		rows [][]string
	}{
		{"original", set.Original},
		{"transformed", set.Transformed},
	} {
		words := 0
		if len(grid.rows) > 0 {
			words = len(grid.rows[0])
		}
		fmt.Printf("%-12s %d rows × %d words\n", grid.name+":", len(grid.rows), words)
	}

	origFirst, haveOrig := firstWord(set.Original)
	transFirst, haveTrans := firstWord(set.Transformed)
	if haveOrig || haveTrans {
		fmt.Println()
	}
	if haveOrig {
		fmt.Printf("First original word:    %s\n", origFirst)
	}
	if haveTrans {
		fmt.Printf("First transformed word: %s\n", transFirst)
	}

	coeffs, err := set.TransformedCoeffs()
	if err != nil {
		return fmt.Errorf("cannot read coefficients: %w", err)
	}
	stats := vector.CoeffStats(coeffs)
	fmt.Println()
	fmt.Println("Clamped coefficients:")
	fmt.Printf("  min/max:  %d / %d\n", stats.Min, stats.Max)
	fmt.Printf("  non-zero: %d\n", stats.NonZero)
	fmt.Printf("  zero:     %d\n", stats.Zero)
	fmt.Printf("  sparsity: %.2f%%\n", stats.Sparsity())
	return nil
}

// firstWord returns a grid's leading word literal when the grid has one.
func firstWord(rows [][]string) (string, bool) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", false
	}
	return rows[0][0], true
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Parallel workers for the rebuild (0 = all CPUs)")
	shapeOnly := fs.Bool("shape-only", false, "Skip the rebuild, check shape and domains only")
	imagePath := fs.String("image", "", "Rebuild from this source image instead of the embedded pixels")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vecinfo verify [-shape-only] [-image src.png] <vectors.json[.zst]>")
		os.Exit(1)
	}

	set := readSet(fs.Arg(0))

	if err := set.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid artifact: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Shape and sample domains OK")

	if *shapeOnly {
		return
	}

	// Rebuild and make sure the stored grids agree with a fresh run of the
	// pipeline. By default the source pixels embedded in the original grid
	// are used; -image checks the artifact against an external source file.
	var src *raster.Image
	var err error
	if *imagePath != "" {
		src, err = imaging.Load(*imagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *imagePath, err)
			os.Exit(1)
		}
	} else {
		src, err = set.OriginalImage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reconstructing source: %v\n", err)
			os.Exit(1)
		}
	}
	rebuilt, _, err := vector.New(*workers).Build(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rebuilding vectors: %v\n", err)
		os.Exit(1)
	}

	mismatches := 0
	for y := range set.Transformed {
		for i := range set.Transformed[y] {
			if set.Transformed[y][i] != rebuilt.Transformed[y][i] {
				mismatches++
			}
			if set.Original[y][i] != rebuilt.Original[y][i] {
				mismatches++
			}
		}
	}
	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "Artifact differs from a fresh build in %d words\n", mismatches)
		os.Exit(1)
	}
	fmt.Println("Artifact matches a fresh build")
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	originalOut := fs.String("original", "", "Write the source image PNG to this path")
	transformedOut := fs.String("transformed", "", "Write the coefficient map PNG to this path")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vecinfo export [-original out.png] [-transformed out.png] <vectors.json[.zst]>")
		os.Exit(1)
	}

	// Without explicit targets, derive both from the artifact name.
	if *originalOut == "" && *transformedOut == "" {
		base := strings.TrimSuffix(strings.TrimSuffix(fs.Arg(0), ".zst"), ".json")
		*originalOut = base + "_original.png"
		*transformedOut = base + "_transformed.png"
	}

	set := readSet(fs.Arg(0))

	if *originalOut != "" {
		img, err := set.OriginalImage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reconstructing source: %v\n", err)
			os.Exit(1)
		}
		if err := imaging.WritePNG(*originalOut, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *originalOut, err)
			os.Exit(1)
		}
		fmt.Printf("Exported: %s (%dx%d)\n", *originalOut, img.Width, img.Height)
	}

	if *transformedOut != "" {
		img, err := set.TransformedImage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading transformed grid: %v\n", err)
			os.Exit(1)
		}
		if err := imaging.WritePNG(*transformedOut, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *transformedOut, err)
			os.Exit(1)
		}
		fmt.Printf("Exported: %s (%dx%d)\n", *transformedOut, img.Width, img.Height)
	}
}
