// Command ntrucrypt encrypts or decrypts a file using the NTRU KEM
// envelope: the output is the 152-byte encapsulation blob directly
// followed by the AES-CBC envelope blob, with no framing (spec §6
// "Files", "Encrypted payload file").
package main

import (
	"flag"
	"log"
	"os"

	"github.com/amossys-team/ntrukem/envelope"
	"github.com/amossys-team/ntrukem/kem"
)

func main() {
	encrypt := flag.Bool("e", false, "encrypt")
	decrypt := flag.Bool("d", false, "decrypt")
	keyPath := flag.String("k", "", "key file (public key to encrypt, private key to decrypt)")
	inPath := flag.String("i", "", "input file")
	outPath := flag.String("o", "", "output file")
	flag.Parse()

	if *encrypt == *decrypt {
		log.Fatal("ntrucrypt: exactly one of -e or -d is required")
	}
	if *keyPath == "" || *inPath == "" || *outPath == "" {
		log.Fatal("ntrucrypt: -k, -i and -o are all required")
	}

	keyBytes, err := os.ReadFile(*keyPath)
	if err != nil {
		log.Fatalf("ntrucrypt: read key: %v", err)
	}
	input, err := os.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("ntrucrypt: read input: %v", err)
	}

	var output []byte
	if *encrypt {
		output, err = runEncrypt(keyBytes, input)
	} else {
		output, err = runDecrypt(keyBytes, input)
	}
	if err != nil {
		log.Fatalf("ntrucrypt: %v", err)
	}

	if err := os.WriteFile(*outPath, output, 0644); err != nil {
		log.Fatalf("ntrucrypt: write output: %v", err)
	}
}

func runEncrypt(public, plaintext []byte) ([]byte, error) {
	sharedKey, ciphertext, err := kem.Encapsulate(kem.NewRand(), public)
	if err != nil {
		return nil, err
	}
	body, err := envelope.Seal(sharedKey, plaintext)
	if err != nil {
		return nil, err
	}
	return append(ciphertext, body...), nil
}

func runDecrypt(private, blob []byte) ([]byte, error) {
	if len(blob) < kem.PublicKeySize {
		return nil, kem.ErrMalformedInput
	}
	ciphertext, body := blob[:kem.PublicKeySize], blob[kem.PublicKeySize:]
	sharedKey, err := kem.Decapsulate(private, ciphertext)
	if err != nil {
		return nil, err
	}
	return envelope.Open(sharedKey, body)
}
