// vpatool is a CLI utility for inspecting and rendering .vpa navmesh files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/internal/render"
	"github.com/Pika15959/FFX-Mapout.vpa-Visualiser/pkg/vpa"
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
	case "verts":
		cmdVerts(args)
	case "tris":
		cmdTris(args)
	case "render":
		cmdRender(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vpatool - FFX .vpa navmesh utility

Usage:
  vpatool <command> [options]

Commands:
  info <file.vpa>                 Show mesh summary and passability histogram
  verts <file.vpa> [-n N]         Dump decoded vertices
  tris <file.vpa> [-n N]          Dump triangles with decoded attributes
  render <file.vpa> [output.webp] Render a snapshot image of the mesh

Examples:
  vpatool info cloister.vpa
  vpatool tris cloister.vpa -n 20
  vpatool render cloister.vpa cloister.webp`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vpatool info <file.vpa>")
		os.Exit(1)
	}

	mesh := mustParse(args[0])

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Vertices:  %d\n", len(mesh.Verts))
	fmt.Printf("Triangles: %d\n", len(mesh.Tris))
	fmt.Printf("Scale:     %g\n", mesh.Scale)

	min, max := mesh.Bounds()
	fmt.Printf("Bounds:    (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)

	renderable := len(mesh.RenderableTris())
	if dangling := len(mesh.Tris) - renderable; dangling > 0 {
		fmt.Printf("Dangling:  %d triangles reference missing vertices\n", dangling)
	}

	fmt.Println()
	fmt.Println("Triangles by passability:")
	counts := mesh.CountByPassability()
	for _, p := range []vpa.Passability{
		vpa.Passable,
		vpa.Blocked,
		vpa.BlockedNPC,
		vpa.BlockedPlayer,
		vpa.Scripted,
		vpa.Unclassified,
	} {
		if counts[p] > 0 {
			fmt.Printf("  %-14s %d\n", p, counts[p])
		}
	}
}

func cmdVerts(args []string) {
	fs := flag.NewFlagSet("verts", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N vertices (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vpatool verts <file.vpa> [-n N]")
		os.Exit(1)
	}

	mesh := mustParse(fs.Arg(0))

	for i, v := range mesh.Verts {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "... %d more\n", len(mesh.Verts)-i)
			break
		}
		fmt.Printf("%6d  %10.3f %10.3f %10.3f\n", i, v.X, v.Y, v.Z)
	}
}

func cmdTris(args []string) {
	fs := flag.NewFlagSet("tris", flag.ExitOnError)
	limit := fs.Int("n", 0, "Limit output to N triangles (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vpatool tris <file.vpa> [-n N]")
		os.Exit(1)
	}

	mesh := mustParse(fs.Arg(0))

	for i, t := range mesh.Tris {
		if *limit > 0 && i >= *limit {
			fmt.Fprintf(os.Stderr, "... %d more\n", len(mesh.Tris)-i)
			break
		}
		fmt.Printf("%6d  v=[%5d %5d %5d]  n=[%6d %6d %6d]  pass=%-13s battle=%d loc=%d snd=%d\n",
			i,
			t.VertexIndices[0], t.VertexIndices[1], t.VertexIndices[2],
			t.NeighbourIndices[0], t.NeighbourIndices[1], t.NeighbourIndices[2],
			t.Passability(),
			t.Attrs.Battle(), t.Attrs.Location(), t.Attrs.SoundType(),
		)
	}
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	width := fs.Int("width", 1024, "Output image width")
	height := fs.Int("height", 768, "Output image height")
	supersample := fs.Int("ss", 2, "Supersample factor")
	noLegend := fs.Bool("no-legend", false, "Omit the passability legend")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: vpatool render <file.vpa> [output.webp]")
		os.Exit(1)
	}

	input := fs.Arg(0)
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".webp"
	if fs.NArg() > 1 {
		output = fs.Arg(1)
	}

	mesh := mustParse(input)

	opts := render.DefaultOptions()
	opts.Width = *width
	opts.Height = *height
	opts.Supersample = *supersample
	opts.Legend = !*noLegend

	img := render.Snapshot(mesh, opts)

	f, err := os.Create(output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%dx%d, %d triangles)\n", output, *width, *height, len(mesh.RenderableTris()))
}

func mustParse(path string) *vpa.Mesh {
	mesh, err := vpa.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh
}
