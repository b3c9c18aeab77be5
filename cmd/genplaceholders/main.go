package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davemoore22/sorcery-sub003/internal/placeholders"
)

func main() {
	dir := flag.String("out", "data/art", "directory to write projection.png and atlas.json into")
	flag.Parse()

	fmt.Println("Sorcery Placeholder Atlas Generator")
	fmt.Println("===================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s/projection.png and %s/atlas.json\n", *dir, *dir)
	fmt.Println()
	fmt.Println("Done! Point SORCERY_ATLAS at atlas.json to use it.")
}
