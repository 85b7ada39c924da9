// Package registry tracks every running survival agent in the process so
// the API layer and CLI can reach them by id.
package registry

import (
	"sort"
	"sync"

	"github.com/axobase/egde/survival"
)

var (
	agents    = make(map[string]*survival.Agent)
	agentLock sync.Mutex
)

// RegisterAgent adds (or replaces) an agent under its id.
func RegisterAgent(id string, a *survival.Agent) {
	agentLock.Lock()
	defer agentLock.Unlock()
	agents[id] = a
}

// GetAgent returns the agent registered under id, or nil.
func GetAgent(id string) *survival.Agent {
	agentLock.Lock()
	defer agentLock.Unlock()
	return agents[id]
}

// RemoveAgent drops an agent from the registry (it keeps running until its
// own Stop is called).
func RemoveAgent(id string) {
	agentLock.Lock()
	defer agentLock.Unlock()
	delete(agents, id)
}

// AllAgents returns every registered agent, ordered by id for stable
// listings.
func AllAgents() []*survival.Agent {
	agentLock.Lock()
	defer agentLock.Unlock()

	ids := make([]string, 0, len(agents))
	for id := range agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*survival.Agent, 0, len(ids))
	for _, id := range ids {
		out = append(out, agents[id])
	}
	return out
}

// Count returns the number of registered agents.
func Count() int {
	agentLock.Lock()
	defer agentLock.Unlock()
	return len(agents)
}
