package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/suparena/dynamodel"
	"github.com/suparena/dynamodel/registry"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	manifestFlag = flag.String("manifest", "models.yaml", "Path to the model manifest")
)

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := dynamodel.GetVersionInfo()
		fmt.Printf("dynamodel modelmap version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	defs, err := registry.LoadManifest(*manifestFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "modelmap: %v\n", err)
		os.Exit(1)
	}

	for _, def := range defs {
		fmt.Printf("%s\n", def.Name)
		fmt.Printf("  table: %s\n", def.Table)
		if def.UsesCompositeKey() {
			fmt.Printf("  composite key: %s\n", strings.Join(def.CompositeKey, ", "))
		} else {
			fmt.Printf("  primary key: %s\n", def.PrimaryKey)
		}
		for _, idx := range def.Indexes {
			fmt.Printf("  index: %s -> %s\n", idx.Field, idx.Index)
		}
		if len(def.Fillable) > 0 {
			fmt.Printf("  fillable: %s\n", strings.Join(def.Fillable, ", "))
		}
		if def.Timestamps {
			fmt.Printf("  timestamps: enabled\n")
		}
	}
}
