// Command hash-generator computes the stored form of a password, which is
// handy for seeding users directly in the database or verifying what a
// deployment's salt produces.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/nvoronina/adboard-api/internal/service/auth"
)

func main() {
	scheme := flag.String("scheme", "legacy", "hashing scheme: legacy or bcrypt")
	salt := flag.String("salt", "", "fixed salt for the legacy scheme")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-scheme legacy|bcrypt] [-salt SALT] PASSWORD...")
		os.Exit(2)
	}

	var hasher auth.PasswordHasher
	switch *scheme {
	case "legacy":
		hasher = auth.NewLegacyHasher(*salt)
	case "bcrypt":
		hasher = auth.NewBcryptHasher(bcrypt.DefaultCost)
	default:
		fmt.Fprintf(os.Stderr, "unknown scheme: %s\n", *scheme)
		os.Exit(2)
	}

	for _, password := range flag.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			fmt.Printf("Error generating hash for %s: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
