package items

import "math/rand/v2"

// Drop is a rolled item and count.
type Drop struct {
	ItemID string
	Count  int
}

// Roll resolves a loot table. Always entries are granted once each, then
// rolls weighted picks are drawn with replacement from the rest.
func (r *Registry) Roll(entries []LootEntry, rolls int, rng *rand.Rand) []Drop {
	var out []Drop
	var pool []LootEntry
	var weights []float64
	total := 0.0
	for _, e := range entries {
		if e.Always {
			out = append(out, Drop{ItemID: e.Item, Count: rollCount(e, rng)})
			continue
		}
		w := e.Weight
		if w <= 0 {
			if it, ok := r.items[e.Item]; ok {
				w = it.Rarity.DropWeight()
			}
		}
		if w <= 0 {
			continue
		}
		pool = append(pool, e)
		weights = append(weights, w)
		total += w
	}
	if total <= 0 {
		return out
	}
	for range rolls {
		pick := rng.Float64() * total
		for i, w := range weights {
			pick -= w
			if pick < 0 || i == len(weights)-1 {
				out = append(out, Drop{ItemID: pool[i].Item, Count: rollCount(pool[i], rng)})
				break
			}
		}
	}
	return out
}

func rollCount(e LootEntry, rng *rand.Rand) int {
	lo := max(e.Min, 1)
	hi := max(e.Max, lo)
	if hi == lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
