package probgen

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/planforge/planforge/belts"
	"github.com/planforge/planforge/factory"
)

// Belts generates a random routing problem, deterministic in seed.
//
// Construction:
//  1. 5–10 nodes; n0 is the source, the last node the sink.
//  2. A forced path source → up to 3 intermediates → sink whose capacities
//     exceed the supply, so the instance is usually feasible.
//  3. Filler edges with modest capacities, never out of the sink or into
//     the source.
//  4. Each intermediate gets a node cap with probability 1/2, always above
//     the supply so the forced path stays open.
func Belts(seed int64) *belts.Problem {
	rng := rand.New(rand.NewSource(seed))

	numNodes := 5 + rng.Intn(6)
	numEdges := numNodes + rng.Intn(numNodes+1)

	nodes := make([]string, numNodes)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("n%d", i)
	}
	source := nodes[0]
	sink := nodes[numNodes-1]
	intermediates := nodes[1 : numNodes-1]

	totalSupply := float64(500 + rng.Intn(1001))

	// Forced path through a random sample of intermediates.
	sample := append([]string(nil), intermediates...)
	rng.Shuffle(len(sample), func(i, j int) { sample[i], sample[j] = sample[j], sample[i] })
	hops := len(sample)
	if hops > 3 {
		hops = 3
	}
	path := append(append([]string{source}, sample[:hops]...), sink)

	var edges []belts.Edge
	for i := 0; i+1 < len(path); i++ {
		edges = append(edges, belts.Edge{
			From: path[i],
			To:   path[i+1],
			Lo:   float64(rng.Intn(51)),
			Hi:   totalSupply + float64(rng.Intn(501)),
		})
	}

	for len(edges) < numEdges {
		u := nodes[rng.Intn(numNodes)]
		v := nodes[rng.Intn(numNodes)]
		if u == v || u == sink || v == source {
			continue
		}
		edges = append(edges, belts.Edge{
			From: u,
			To:   v,
			Hi:   float64(100 + rng.Intn(401)),
		})
	}

	caps := make(map[string]float64)
	for _, node := range intermediates {
		if rng.Float64() < 0.5 {
			caps[node] = totalSupply + float64(rng.Intn(501))
		}
	}

	return &belts.Problem{
		Nodes:    nodes,
		Edges:    edges,
		NodeCaps: caps,
		Sources:  map[string]float64{source: totalSupply},
		Sink:     sink,
	}
}

// Factory generates a random production problem, deterministic in seed.
//
// Recipes form a chain: each consumes 1–2 already-available items (raw or
// previously produced) and emits one new item; the last item in the chain
// becomes the target. Raw supply and machine caps are generous, so the
// instance is usually feasible.
func Factory(seed int64) *factory.Problem {
	rng := rand.New(rand.NewSource(seed))

	numMachines := 2 + rng.Intn(3)
	numRecipes := 4 + rng.Intn(5)
	numRaw := 2 + rng.Intn(2)

	speeds := []float64{30, 60, 90, 120}
	machines := make(map[string]factory.Machine, numMachines)
	machineNames := make([]string, numMachines)
	for i := range machineNames {
		name := fmt.Sprintf("machine_%d", i+1)
		machineNames[i] = name
		machines[name] = factory.Machine{CraftsPerMin: speeds[rng.Intn(len(speeds))]}
	}

	available := make([]string, numRaw)
	for i := range available {
		available[i] = fmt.Sprintf("raw_%d", i+1)
	}
	rawItems := append([]string(nil), available...)

	recipes := make(map[string]factory.Recipe, numRecipes)
	for i := 0; i < numRecipes; i++ {
		in := make(map[string]float64)
		for n := 1 + rng.Intn(2); n > 0; n-- {
			in[available[rng.Intn(len(available))]] = float64(1 + rng.Intn(3))
		}

		newItem := fmt.Sprintf("item_%d", i+1)
		recipes[fmt.Sprintf("recipe_%d", i+1)] = factory.Recipe{
			Machine: machineNames[rng.Intn(numMachines)],
			TimeS:   math.Round((0.5+rng.Float64()*4.5)*10) / 10,
			In:      in,
			Out:     map[string]float64{newItem: float64(1 + rng.Intn(2))},
		}
		available = append(available, newItem)
	}

	rawSupply := make(map[string]float64, len(rawItems))
	for _, item := range rawItems {
		rawSupply[item] = float64(1000 + rng.Intn(4001))
	}
	maxMachines := make(map[string]float64, numMachines)
	for _, name := range machineNames {
		maxMachines[name] = float64(100 + rng.Intn(401))
	}

	return &factory.Problem{
		Machines: machines,
		Recipes:  recipes,
		Limits: factory.Limits{
			RawSupplyPerMin: rawSupply,
			MaxMachines:     maxMachines,
		},
		Target: factory.Target{
			Item:       available[len(available)-1],
			RatePerMin: float64(50 + rng.Intn(151)),
		},
	}
}
