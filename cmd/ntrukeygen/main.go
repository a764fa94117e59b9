// Command ntrukeygen generates an NTRU key pair and writes it to
// <name>.priv and <name>.pub, mirroring genkeypair.py's on-disk
// contract (spec §6 "Files").
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/amossys-team/ntrukem/kem"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: ntrukeygen <name>")
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}
	name := os.Args[1]

	private, public, err := kem.KeyGen(kem.NewRand())
	if err != nil {
		log.Fatalf("ntrukeygen: %v", err)
	}

	privPath := name + ".priv"
	pubPath := name + ".pub"

	if err := os.WriteFile(privPath, private, 0600); err != nil {
		log.Fatalf("ntrukeygen: write %s: %v", privPath, err)
	}
	if err := os.WriteFile(pubPath, public, 0644); err != nil {
		log.Fatalf("ntrukeygen: write %s: %v", pubPath, err)
	}

	fmt.Printf("wrote %s (%d bytes) and %s (%d bytes)\n", privPath, len(private), pubPath, len(public))
}
