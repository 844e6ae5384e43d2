// Package domain contains the core entities and value objects of the
// scheduling engine: cards, difficulty tiers, review quality ratings, and
// study sessions. It is independent of any delivery mechanism or storage
// layer; callers own persistence and merge engine results back into their
// stored card state.
package domain
