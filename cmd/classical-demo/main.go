// Command classical-demo walks through every cipher family and the
// statistical measures with the classic textbook inputs.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/bdiallo/go-classical-ciphers/analysis"
	"github.com/bdiallo/go-classical-ciphers/classical"
	"github.com/bdiallo/go-classical-ciphers/modmath"
)

func main() {
	var (
		name  = flag.String("name", "BOUBACAR", "text for the Caesar demonstration")
		shift = flag.Int("shift", 3, "Caesar shift")
	)
	flag.Parse()

	demoCaesar(*name, *shift)
	demoAffine()
	demoVigenere()
	demoHill()
	demoStatistics()
}

func demoCaesar(text string, shift int) {
	fmt.Println("--- Caesar ---")
	c := classical.NewCaesar(shift)

	ct, err := c.Encrypt(text)
	if err != nil {
		log.Fatalf("caesar encrypt: %v", err)
	}
	pt, err := c.Decrypt(ct)
	if err != nil {
		log.Fatalf("caesar decrypt: %v", err)
	}
	fmt.Printf("original:  %q (shift %d)\n", text, shift)
	fmt.Printf("encrypted: %q\n", ct)
	fmt.Printf("decrypted: %q\n\n", pt)
}

func demoAffine() {
	fmt.Println("--- Affine ---")
	const text = "CRYPTOGRAPHIE EST AMUSANTE"
	c, err := classical.NewAffine(5, 8)
	if err != nil {
		log.Fatalf("affine key: %v", err)
	}

	ct, _ := c.Encrypt(text)
	pt, _ := c.Decrypt(ct)
	fmt.Printf("original:  %q (a=5, b=8)\n", text)
	fmt.Printf("encrypted: %q\n", ct)
	fmt.Printf("decrypted: %q\n\n", pt)
}

func demoVigenere() {
	fmt.Println("--- Vigenère ---")
	c, err := classical.NewVigenere("LEMON")
	if err != nil {
		log.Fatalf("vigenère key: %v", err)
	}

	ct, _ := c.Encrypt("ATTACKATDAWN")
	pt, _ := c.Decrypt(ct)
	fmt.Printf("original:  %q (key LEMON)\n", "ATTACKATDAWN")
	fmt.Printf("encrypted: %q\n", ct)
	fmt.Printf("decrypted: %q\n\n", pt)
}

func demoHill() {
	fmt.Println("--- Hill (2×2) ---")
	key := modmath.Matrix2x2{A: 11, B: 8, C: 3, D: 7}
	c, err := classical.NewHill(key)
	if err != nil {
		log.Fatalf("hill key: %v", err)
	}

	const text = "BONJOURLEMONDE"
	ct, _ := c.Encrypt(text)
	pt, _ := c.Decrypt(ct)
	fmt.Printf("original:  %q\n", text)
	fmt.Printf("key:       [%d %d] [%d %d]\n", key.A, key.B, key.C, key.D)
	fmt.Printf("encrypted: %q\n", ct)
	fmt.Printf("decrypted: %q\n\n", pt)

	// A key with an even determinant cannot be undone and is rejected.
	if _, err := classical.NewHill(modmath.Matrix2x2{A: 2, B: 4, C: 6, D: 8}); err != nil {
		fmt.Printf("rejected key [[2 4] [6 8]]: %v\n\n", err)
	}
}

func demoStatistics() {
	fmt.Println("--- Entropy, redundancy, index of coincidence ---")
	texts := []struct {
		label string
		text  string
	}{
		{"natural", "CECI EST UN TEST POUR LENTROPIE ET LA REDONDANCE ET LINCIDENCE DE COINCIDENCE"},
		{"random-ish", "ZQWXTJKLMNOIPQRSUVWXZYZABCDEFGH"},
		{"redundant", "AAAAAAAAAAAAAAAAAAAAAAAAAAAZZAAAAAAAAAAAAAAAAA"},
	}
	for _, tt := range texts {
		fmt.Printf("%-10s entropy=%.4f  redundancy=%.4f  ic=%.4f\n",
			tt.label,
			analysis.Entropy(tt.text),
			analysis.Redundancy(tt.text),
			analysis.IndexOfCoincidence(tt.text))
	}
}
