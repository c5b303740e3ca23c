// Package main provides the Flint demo application.
// It demonstrates idiomatic patterns for building UIs with Flint.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		for _, demo := range demos {
			runDemo(demo)
		}
		return
	}

	name := os.Args[1]
	for _, demo := range demos {
		if demo.Name == name {
			runDemo(demo)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "unknown demo %q; available:\n", name)
	for _, demo := range demos {
		fmt.Fprintf(os.Stderr, "  %s\t%s\n", demo.Name, demo.Subtitle)
	}
	os.Exit(1)
}

func runDemo(demo Demo) {
	fmt.Printf("=== %s ===\n", demo.Title)
	demo.Run(newSession())
	fmt.Println()
}
