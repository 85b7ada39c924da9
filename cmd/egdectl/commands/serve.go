package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	natsd "github.com/nats-io/nats-server/v2/server"
	"github.com/spf13/cobra"

	"github.com/axobase/egde/api"
	"github.com/axobase/egde/api/handlers"
	"github.com/axobase/egde/config"
	"github.com/axobase/egde/decision"
	"github.com/axobase/egde/evolution"
	"github.com/axobase/egde/exprcache"
	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/insights"
	"github.com/axobase/egde/ports"
	"github.com/axobase/egde/ports/ledgeradapter"
	"github.com/axobase/egde/ports/llmadapter"
	"github.com/axobase/egde/ports/messagingadapter"
	"github.com/axobase/egde/ports/storageadapter"
	"github.com/axobase/egde/ports/walletadapter"
	"github.com/axobase/egde/registry"
	"github.com/axobase/egde/storage"
	"github.com/axobase/egde/survival"
)

var (
	servePopulationID string
	serveAPIPort      int
	serveNATSURL      string
	serveEmbeddedNATS bool
	serveDataDir      string
	serveAgents       int
	serveInitialFunds float64
)

// ServeCmd launches a population of survival loops behind the HTTP API.
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a population of agents",
	Long:  `Launch the ledger, messaging, storage, and LLM adapters, spawn a population of genesis agents, and serve the HTTP API.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Printf("serve failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	ServeCmd.Flags().StringVar(&servePopulationID, "population", "axobase", "Population ID")
	ServeCmd.Flags().IntVar(&serveAPIPort, "api-port", 0, "API port (default: from config)")
	ServeCmd.Flags().StringVar(&serveNATSURL, "nats", "", "NATS URL (default: from config)")
	ServeCmd.Flags().BoolVar(&serveEmbeddedNATS, "embedded-nats", false, "Start an embedded NATS server")
	ServeCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Badger data directory (default: from config)")
	ServeCmd.Flags().IntVar(&serveAgents, "agents", 3, "Number of genesis agents to spawn")
	ServeCmd.Flags().Float64Var(&serveInitialFunds, "initial-funds", 10, "Initial stable balance per agent")
}

func runServe() error {
	cfg := config.Default()
	if serveAPIPort != 0 {
		cfg.APIPort = serveAPIPort
	}
	if serveNATSURL != "" {
		cfg.NATSURL = serveNATSURL
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}

	if serveEmbeddedNATS {
		ns, err := natsd.NewServer(&natsd.Options{Port: 4222})
		if err != nil {
			return fmt.Errorf("embedded NATS: %w", err)
		}
		go ns.Start()
		if !ns.ReadyForConnections(10 * time.Second) {
			return fmt.Errorf("embedded NATS did not become ready")
		}
		log.Println("Embedded NATS server ready on :4222")
	}

	store, err := storage.GetDBStorage(cfg.DataDir, servePopulationID)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}
	defer storage.CloseAll()

	coordinator := evolution.NewCoordinator(ports.NewSystemRng(), ports.NewSystemClock())
	ledgerApp := ledgeradapter.NewApplication(servePopulationID, store)
	ledger := ledgeradapter.NewLedger(ledgerApp)
	wallet := walletadapter.InitializePopulationFunds(servePopulationID)
	llm := llmadapter.NewFromEnv()
	cache := exprcache.New(cfg.Cache.MaxSize, cfg.Cache.Cleanup)
	defer cache.Close()

	ctx := context.Background()

	// One process-level subscription feeds the cooperation ledger; agents
	// publish on the same subject through their own connections.
	if coopMessenger, err := messagingadapter.NewMessenger(cfg.NATSURL, servePopulationID); err != nil {
		log.Printf("NATS unavailable, cooperation ledger will not fill: %v", err)
	} else if _, err := coopMessenger.SubscribeCooperation(func(ev messagingadapter.CooperationEvent) {
		coordinator.RecordInteraction(ev.FromAgentID, ev.PeerAgentID, 0.5*float64(ev.Interactions), ev.Interactions)
	}); err != nil {
		log.Printf("Cooperation subscription failed: %v", err)
	}

	spawn := func(agentID string, g *genome.DynamicGenome) (*survival.Agent, error) {
		var messaging ports.Messaging
		messenger, err := messagingadapter.NewMessenger(cfg.NATSURL, agentID)
		if err != nil {
			log.Printf("NATS unavailable for %s, messaging disabled: %v", agentID, err)
		} else {
			messaging = messenger
		}

		inscriber, err := storageadapter.NewInscriptionService(servePopulationID, agentID, messenger, store)
		if err != nil {
			return nil, err
		}

		wallet.Fund(agentID, serveInitialFunds, 0.01)

		agent := survival.NewAgent(agentID, g, ports.NewSystemClock(), wallet, llm, inscriber, messaging, ledger, cache)
		agent.Executor = &loggingExecutor{wallet: wallet}
		agent.OnDeath = func(ctx context.Context, id, cause string) {
			messagingadapter.BroadcastEvent(messagingadapter.EventAgentDied, map[string]string{"agentId": id, "cause": cause})
		}

		if _, err := ledger.RegisterBirth(ctx, agentID, g.GenomeHash); err != nil {
			return nil, err
		}
		if err := store.SaveGenomeRecord(servePopulationID, agentID, mustSerialize(g)); err != nil {
			log.Printf("Failed to persist genome for %s: %v", agentID, err)
		}

		registry.RegisterAgent(agentID, agent)
		go func() {
			if err := agent.Run(ctx); err != nil {
				log.Printf("Agent %s exited: %v", agentID, err)
			}
		}()
		return agent, nil
	}

	for i := 0; i < serveAgents; i++ {
		agentID := fmt.Sprintf("%s-agent-%d", servePopulationID, i)
		if _, err := spawn(agentID, genepool.CreateGenesisGenome(agentID)); err != nil {
			return fmt.Errorf("spawning %s: %w", agentID, err)
		}
	}

	extractor := insights.NewExtractor(servePopulationID)
	handlers.Configure(handlers.Deps{
		Coordinator: coordinator,
		Extractor:   extractor,
		Narrator:    insights.NewNarrator(llm),
		SpawnAgent:  spawn,
	})

	log.Printf("Serving population %s with %d agents on :%d", servePopulationID, registry.Count(), cfg.APIPort)
	api.StartServer(cfg.APIPort)
	return nil
}

func mustSerialize(g *genome.DynamicGenome) genome.Record {
	rec, err := genome.Serialize(g)
	if err != nil {
		log.Printf("Genome serialization failed: %v", err)
	}
	return rec
}

// loggingExecutor is the default action executor: it debits the action's
// expected cost from the wallet and records the outcome. Real deployments
// replace it with an executor that talks to exchanges, staking contracts,
// and labor markets.
type loggingExecutor struct {
	wallet *walletadapter.PopulationFunds
}

func (e *loggingExecutor) Execute(ctx context.Context, agentID string, action decision.ActionType, d decision.Decision) (string, error) {
	cost := decision.ExpectedCost(action)
	if cost > 0 {
		if err := e.wallet.Debit(agentID, cost); err != nil {
			return "", err
		}
	}
	log.Printf("Agent %s executed %s (cost %.4f)", agentID, action, cost)
	return fmt.Sprintf("executed %s", action), nil
}
