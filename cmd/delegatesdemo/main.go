package main

import (
	"log"
	"os"

	"github.com/krew-solutions/multicast-go/multicast/demo"
)

func main() {
	if err := demo.Run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
