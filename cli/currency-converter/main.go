package main

import (
	log "github.com/charmbracelet/log"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}
