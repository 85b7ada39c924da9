// Package handlers implements the HTTP handlers over the live agent
// registry and the evolution coordinator.
package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/axobase/egde/envstate"
	"github.com/axobase/egde/evolution"
	"github.com/axobase/egde/expression"
	"github.com/axobase/egde/genepool"
	"github.com/axobase/egde/genome"
	"github.com/axobase/egde/insights"
	"github.com/axobase/egde/ports/messagingadapter"
	"github.com/axobase/egde/registry"
	"github.com/axobase/egde/survival"
)

// Deps is everything the handlers need from the process that started the
// server. SpawnAgent builds, registers, and starts one survival loop for a
// fresh genome and returns its id.
type Deps struct {
	Coordinator *evolution.Coordinator
	Extractor   *insights.Extractor
	Narrator    *insights.Narrator
	SpawnAgent  func(agentID string, g *genome.DynamicGenome) (*survival.Agent, error)
}

var (
	deps   Deps
	depsMu sync.RWMutex
)

// Configure installs the handler dependencies; called once by the serve
// command before StartServer.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

// InsightExtractor exposes the configured extractor to route setup.
func InsightExtractor() *insights.Extractor { return getDeps().Extractor }

// InsightNarrator exposes the configured narrator to route setup.
func InsightNarrator() *insights.Narrator { return getDeps().Narrator }

type registerAgentRequest struct {
	Name string `json:"name"`
}

// RegisterAgent creates a genesis agent and starts its survival loop.
func RegisterAgent(c *gin.Context) {
	d := getDeps()
	if d.SpawnAgent == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "agent spawning not configured"})
		return
	}

	var req registerAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid agent data"})
		return
	}

	agentID := uuid.New().String()
	g := genepool.CreateGenesisGenome(agentID)

	agent, err := d.SpawnAgent(agentID, g)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	messagingadapter.BroadcastEvent(messagingadapter.EventAgentRegistered, agent.Snapshot())
	c.JSON(http.StatusOK, gin.H{"agentId": agentID, "genomeHash": g.GenomeHash, "name": req.Name})
}

// GetAgents lists every registered agent's snapshot.
func GetAgents(c *gin.Context) {
	agents := registry.AllAgents()
	out := make([]survival.Snapshot, 0, len(agents))
	for _, a := range agents {
		out = append(out, a.Snapshot())
	}
	c.JSON(http.StatusOK, out)
}

func lookupAgent(c *gin.Context) *survival.Agent {
	a := registry.GetAgent(c.Param("agentID"))
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agent not found"})
	}
	return a
}

// GetAgent returns one agent's snapshot.
func GetAgent(c *gin.Context) {
	if a := lookupAgent(c); a != nil {
		c.JSON(http.StatusOK, a.Snapshot())
	}
}

// GetGenome returns the versioned serialization envelope of an agent's
// current genome.
func GetGenome(c *gin.Context) {
	a := lookupAgent(c)
	if a == nil {
		return
	}
	rec, err := genome.Serialize(a.GenomeClone())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetExpression expresses the agent's genome against its current
// environment (or the last tick's cached result when present).
func GetExpression(c *gin.Context) {
	a := lookupAgent(c)
	if a == nil {
		return
	}
	if res, ok := a.LastExpression(); ok {
		c.JSON(http.StatusOK, gin.H{"stats": res.Stats, "totalMetabolicCost": res.TotalMetabolicCost, "genes": res.Expressed.Genes})
		return
	}
	snap := a.Snapshot()
	env := snap.Env
	if env.Mode == "" {
		env.Mode = envstate.ModeNormal
	}
	res := expression.Express(a.GenomeClone(), env, 0, 0, nil)
	c.JSON(http.StatusOK, gin.H{"stats": res.Stats, "totalMetabolicCost": res.TotalMetabolicCost, "genes": res.Expressed.Genes})
}

// GetLastDecision returns the agent's most recent decision.
func GetLastDecision(c *gin.Context) {
	a := lookupAgent(c)
	if a == nil {
		return
	}
	d, ok := a.LastDecision()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no decision made yet"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// StopAgent asks an agent's survival loop to exit at its next suspension
// point.
func StopAgent(c *gin.Context) {
	a := lookupAgent(c)
	if a == nil {
		return
	}
	a.Stop()
	c.JSON(http.StatusOK, gin.H{"status": "stopping"})
}

type breedRequest struct {
	ParentAID           string  `json:"parentAId"`
	ParentBID           string  `json:"parentBId"`
	EnvironmentalStress float64 `json:"environmentalStress"`
	StarvationMode      bool    `json:"starvationMode"`
}

// Breed runs the operator pipeline on two live agents' genomes and spawns
// the child as a new agent.
func Breed(c *gin.Context) {
	d := getDeps()
	if d.Coordinator == nil || d.SpawnAgent == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "breeding not configured"})
		return
	}

	var req breedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid breeding request"})
		return
	}

	parentA := registry.GetAgent(req.ParentAID)
	parentB := registry.GetAgent(req.ParentBID)
	if parentA == nil || parentB == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "parent not found"})
		return
	}

	result, err := d.Coordinator.ExecuteBreeding(
		req.ParentAID, parentA.GenomeClone(),
		req.ParentBID, parentB.GenomeClone(),
		req.EnvironmentalStress, req.StarvationMode,
	)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	childID := uuid.New().String()
	result.Child.LineageID = childID
	d.Coordinator.Lineage().RecordBirth(childID, req.ParentAID, req.ParentBID)
	if _, err := d.SpawnAgent(childID, result.Child); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	messagingadapter.BroadcastEvent(messagingadapter.EventBreeding, gin.H{
		"childId":    childID,
		"parentAId":  req.ParentAID,
		"parentBId":  req.ParentBID,
		"generation": result.Child.Generation,
		"mutations":  len(result.Mutations),
	})
	c.JSON(http.StatusOK, gin.H{
		"childId":              childID,
		"childGenomeHash":      result.Child.GenomeHash,
		"generation":           result.Child.Generation,
		"mutations":            result.Mutations,
		"crossoverEvents":      result.CrossoverEvents,
		"structuralVariations": result.StructuralVariations,
		"geneConversions":      result.GeneConversions,
	})
}
