// Command adminkey generates a random admin key and its bcrypt hash.
//
// The plaintext key goes to the operator calling the admin endpoints; the
// hash goes into the ADMIN_KEY_HASH environment variable of the server.
package main

import (
	"fmt"
	"os"

	"platerra/pkg/secrets"
)

func main() {
	key, err := secrets.Generate()
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate key:", err)
		os.Exit(1)
	}
	hash, err := secrets.Hash(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash key:", err)
		os.Exit(1)
	}

	fmt.Println("admin key:     ", key)
	fmt.Println("ADMIN_KEY_HASH:", hash)
}
