package main

import (
	"fmt"
	"os"

	"gander-engine/uci"
)

func main() {
	fmt.Println("Gander chess engine")
	uci.New(os.Stdout).Run(os.Stdin)
}
