package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/expression"
)

var (
	expressGenomeFile string
	expressBalance    float64
	expressStarving   float64
	expressThriving   float64
	expressStress     float64
	expressMode       string
	expressAgeDays    float64
)

// ExpressCmd expresses a genome file against a synthetic environment.
var ExpressCmd = &cobra.Command{
	Use:   "express",
	Short: "Express a genome against an environment",
	Long:  `Load a serialized genome and compute its expressed trait values, statistics, and metabolic cost.`,
	Run: func(cmd *cobra.Command, args []string) {
		g, err := loadGenome(expressGenomeFile)
		if err != nil {
			fmt.Printf("Error loading genome: %v\n", err)
			os.Exit(1)
		}

		env := envstate.State{
			Balance:      expressBalance,
			DaysStarving: expressStarving,
			DaysThriving: expressThriving,
			StressLevel:  expressStress,
			Mode:         envstate.Mode(expressMode),
		}
		env.Clamp()

		res := expression.Express(g, env, expressAgeDays, 0, nil)

		out := map[string]any{
			"stats":              res.Stats,
			"totalMetabolicCost": res.TotalMetabolicCost,
			"converged":          res.Converged,
			"genes":              res.Expressed.Genes,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
	},
}

func init() {
	ExpressCmd.Flags().StringVar(&expressGenomeFile, "genome", "", "Path to a serialized genome record")
	ExpressCmd.Flags().Float64Var(&expressBalance, "balance", 10, "Stable-unit balance")
	ExpressCmd.Flags().Float64Var(&expressStarving, "starving", 0, "Days starving")
	ExpressCmd.Flags().Float64Var(&expressThriving, "thriving", 0, "Days thriving")
	ExpressCmd.Flags().Float64Var(&expressStress, "stress", 0, "Stress level [0,1]")
	ExpressCmd.Flags().StringVar(&expressMode, "mode", "normal", "Mode (normal, low-power, emergency, hibernation)")
	ExpressCmd.Flags().Float64Var(&expressAgeDays, "age", 30, "Agent age in days")

	ExpressCmd.MarkFlagRequired("genome")
}
