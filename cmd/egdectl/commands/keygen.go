package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axobase/egde/crypto"
)

// KeygenCmd generates an Ed25519 lineage keypair.
var KeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a lineage keypair",
	Long:  `Generate a new Ed25519 keypair for signing genome hashes on birth and death records.`,
	Run: func(cmd *cobra.Command, args []string) {
		pub, priv, err := crypto.GenerateLineageKeyPair()
		if err != nil {
			fmt.Printf("Failed to generate key pair: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Public Key:", pub)
		fmt.Println("Private Key:", priv)
	},
}
