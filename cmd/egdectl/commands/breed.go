package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axobase/egde/evolution"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/ports"
)

var (
	breedParentAFile string
	breedParentBFile string
	breedStress      float64
	breedStarvation  bool
	breedSeed        uint64
	breedOutFile     string
)

// BreedCmd runs the operator pipeline on two genome files.
var BreedCmd = &cobra.Command{
	Use:   "breed",
	Short: "Breed two genomes",
	Long:  `Run the full breeding pipeline (crossover through gene conversion) on two serialized genomes and print the child.`,
	Run: func(cmd *cobra.Command, args []string) {
		parentA, err := loadGenome(breedParentAFile)
		if err != nil {
			fmt.Printf("Error loading parent A: %v\n", err)
			os.Exit(1)
		}
		parentB, err := loadGenome(breedParentBFile)
		if err != nil {
			fmt.Printf("Error loading parent B: %v\n", err)
			os.Exit(1)
		}

		var rng ports.Rng
		if breedSeed != 0 {
			rng = ports.NewSeededRng(breedSeed, breedSeed+1)
		} else {
			rng = ports.NewSystemRng()
		}

		coordinator := evolution.NewCoordinator(rng, ports.NewSystemClock())
		result, err := coordinator.ExecuteBreeding(
			parentA.LineageID, parentA,
			parentB.LineageID, parentB,
			breedStress, breedStarvation,
		)
		if err != nil {
			fmt.Printf("Breeding failed: %v\n", err)
			os.Exit(1)
		}

		rec, err := genome.Serialize(result.Child)
		if err != nil {
			fmt.Printf("Error serializing child: %v\n", err)
			os.Exit(1)
		}
		data, _ := json.MarshalIndent(rec, "", "  ")

		if breedOutFile != "" {
			if err := os.WriteFile(breedOutFile, data, 0o644); err != nil {
				fmt.Printf("Error writing %s: %v\n", breedOutFile, err)
				os.Exit(1)
			}
			fmt.Printf("Wrote child genome to %s\n", breedOutFile)
		} else {
			fmt.Println(string(data))
		}

		fmt.Printf("Child generation: %d, genes: %d, hash: %s\n",
			result.Child.Generation, result.Child.TotalGeneCount, result.Child.GenomeHash)
		fmt.Printf("Mutations: %d, crossover events: %d, structural variations: %d, conversions: %d\n",
			len(result.Mutations), len(result.CrossoverEvents),
			len(result.StructuralVariations), len(result.GeneConversions))
	},
}

func init() {
	BreedCmd.Flags().StringVar(&breedParentAFile, "parent-a", "", "Path to parent A's serialized genome")
	BreedCmd.Flags().StringVar(&breedParentBFile, "parent-b", "", "Path to parent B's serialized genome")
	BreedCmd.Flags().Float64Var(&breedStress, "stress", 0, "Environmental stress [0,1]")
	BreedCmd.Flags().BoolVar(&breedStarvation, "starvation", false, "Starvation mode (raises deletion pressure)")
	BreedCmd.Flags().Uint64Var(&breedSeed, "seed", 0, "RNG seed for reproducible breeding (0 = system randomness)")
	BreedCmd.Flags().StringVar(&breedOutFile, "out", "", "File to write the child record to (default: stdout)")

	BreedCmd.MarkFlagRequired("parent-a")
	BreedCmd.MarkFlagRequired("parent-b")
}
