package genome

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// CurrentVersion is the major version of the serialized genome record
// format. A record whose Version differs fails to deserialize with
// ErrIncompatibleGenome.
const CurrentVersion = 2

// ErrIncompatibleGenome is the symbolic IncompatibleGenome error kind.
type ErrIncompatibleGenome struct {
	Got, Want int
}

func (e *ErrIncompatibleGenome) Error() string {
	return fmt.Sprintf("incompatible genome record version: got %d, want %d", e.Got, e.Want)
}

// Record is the versioned, self-describing versioned serialization envelope
// {version, genome, checksum}.
type Record struct {
	Version  int           `json:"version"`
	Genome   DynamicGenome `json:"genome"`
	Checksum string        `json:"checksum"`
}

// round6 rounds v to 6 decimal places, matching the canonical encoding rule.
func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func canonicalGene(g Gene) Gene {
	out := g
	out.Value = round6(out.Value)
	out.Weight = round6(out.Weight)
	out.Dominance = round6(out.Dominance)
	out.Plasticity = round6(out.Plasticity)
	out.Essentiality = round6(out.Essentiality)
	out.MetabolicCost = round6(out.MetabolicCost)
	return out
}

func canonicalEdge(e RegulatoryEdge) RegulatoryEdge {
	out := e
	out.Strength = round6(out.Strength)
	out.Threshold = round6(out.Threshold)
	out.Cooperativity = round6(out.Cooperativity)
	out.Phase = round6(out.Phase)
	out.Period = round6(out.Period)
	return out
}

func canonicalMark(m EpigeneticMark) EpigeneticMark {
	out := m
	out.Strength = round6(out.Strength)
	out.Heritability = round6(out.Heritability)
	out.Decay = round6(out.Decay)
	return out
}

// Canonicalize returns a copy of g in canonical form as the wire contract
// describes: chromosomes in declaration order; genes in list order with
// every numeric field rounded to 6 decimal places; edges sorted by
// (sourceId, targetId); marks sorted by targetGeneId.
func Canonicalize(g *DynamicGenome) DynamicGenome {
	out := DynamicGenome{
		Generation:     g.Generation,
		LineageID:      g.LineageID,
		GenomeHash:     g.GenomeHash,
		TotalGeneCount: g.TotalGeneCount,
		BirthTimestamp: g.BirthTimestamp,
	}
	out.Chromosomes = make([]Chromosome, len(g.Chromosomes))
	for i, c := range g.Chromosomes {
		genes := make([]Gene, len(c.Genes))
		for j, gene := range c.Genes {
			genes[j] = canonicalGene(gene)
		}
		out.Chromosomes[i] = Chromosome{ID: c.ID, Name: c.Name, IsEssential: c.IsEssential, Genes: genes}
	}

	edges := make([]RegulatoryEdge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = canonicalEdge(e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].SourceGeneID != edges[j].SourceGeneID {
			return edges[i].SourceGeneID < edges[j].SourceGeneID
		}
		return edges[i].TargetGeneID < edges[j].TargetGeneID
	})
	out.Edges = edges

	marks := make([]EpigeneticMark, len(g.Epigenome))
	for i, m := range g.Epigenome {
		marks[i] = canonicalMark(m)
	}
	sort.Slice(marks, func(i, j int) bool { return marks[i].TargetGeneID < marks[j].TargetGeneID })
	out.Epigenome = marks

	return out
}

// CanonicalEncoding returns the deterministic JSON encoding of g's canonical
// form, suitable for hashing or byte-for-byte cross-language comparison.
func CanonicalEncoding(g *DynamicGenome) ([]byte, error) {
	canon := Canonicalize(g)
	return json.Marshal(canon)
}

// Checksum returns the hex-encoded SHA-256 checksum of g's canonical
// encoding.
func Checksum(g *DynamicGenome) (string, error) {
	enc, err := CanonicalEncoding(g)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(enc)
	return hex.EncodeToString(sum[:]), nil
}

// Serialize builds a versioned Record for g, including a fresh checksum.
func Serialize(g *DynamicGenome) (Record, error) {
	sum, err := Checksum(g)
	if err != nil {
		return Record{}, err
	}
	return Record{Version: CurrentVersion, Genome: *g, Checksum: sum}, nil
}

// Deserialize validates rec's version and checksum and returns the genome.
func Deserialize(rec Record) (*DynamicGenome, error) {
	if rec.Version != CurrentVersion {
		return nil, &ErrIncompatibleGenome{Got: rec.Version, Want: CurrentVersion}
	}
	g := rec.Genome
	want, err := Checksum(&g)
	if err != nil {
		return nil, err
	}
	if want != rec.Checksum {
		return nil, invariantViolated("checksum mismatch: record carries %q, recomputed %q", rec.Checksum, want)
	}
	return &g, nil
}

// Equal reports whether a and b are structurally equal: same ids and
// numeric fields after rounding to 6 decimal places, gene order within a
// chromosome significant, edge/mark order not significant.
func Equal(a, b *DynamicGenome) bool {
	ca, err := CanonicalEncoding(a)
	if err != nil {
		return false
	}
	cb, err := CanonicalEncoding(b)
	if err != nil {
		return false
	}
	return string(ca) == string(cb)
}
