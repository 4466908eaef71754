package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Generates a bcrypt hash for resetting a YouPower account by hand
// Usage: go run scripts/hash_password.go <email> <password>
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/hash_password.go <email> <password>")
		os.Exit(1)
	}

	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	password := os.Args[2]
	if len(password) < 6 {
		fmt.Println("password must be at least 6 characters")
		os.Exit(1)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Printf("Error generating hash: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("To update in MongoDB, run:\n")
	fmt.Printf("db.users.updateOne(\n")
	fmt.Printf("  {\"email\": %q},\n", email)
	fmt.Printf("  {$set: {\"password\": %q}}\n", string(hashedPassword))
	fmt.Printf(")\n")
}
