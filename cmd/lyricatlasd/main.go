package main

import (
	"log"

	"github.com/IamFurina/Lyric-Atlas-API/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
