package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
)

var (
	genesisLineageID string
	genesisOutFile   string
)

// GenesisCmd prints (or writes) a genesis genome and its hashes.
var GenesisCmd = &cobra.Command{
	Use:   "genesis",
	Short: "Create a genesis genome",
	Long:  `Create a genesis genome from the fixed seed pool and print its serialized record.`,
	Run: func(cmd *cobra.Command, args []string) {
		g := genepool.CreateGenesisGenome(genesisLineageID)
		rec, err := genome.Serialize(g)
		if err != nil {
			fmt.Printf("Error serializing genome: %v\n", err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			fmt.Printf("Error encoding record: %v\n", err)
			os.Exit(1)
		}

		if genesisOutFile != "" {
			if err := os.WriteFile(genesisOutFile, data, 0o644); err != nil {
				fmt.Printf("Error writing %s: %v\n", genesisOutFile, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote genesis genome to %s\n", genesisOutFile)
		} else {
			fmt.Println(string(data))
		}
		fmt.Printf("Genome hash: %s\n", g.GenomeHash)
		fmt.Printf("Checksum:    %s\n", rec.Checksum)
		fmt.Printf("Genes:       %d across %d chromosomes\n", g.TotalGeneCount, len(g.Chromosomes))
	},
}

func init() {
	GenesisCmd.Flags().StringVar(&genesisLineageID, "lineage", "genesis", "Lineage ID for the new genome")
	GenesisCmd.Flags().StringVar(&genesisOutFile, "out", "", "File to write the serialized record to (default: stdout)")
}

// loadGenome reads a serialized genome record from a file.
func loadGenome(path string) (*genome.DynamicGenome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var rec genome.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return genome.Deserialize(rec)
}
