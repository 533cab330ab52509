package main

import (
	"os"
)

func main() {
	if err := NewRenderCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
