package skipset

// Metrics counts the work a set has performed since construction. Counters
// are plain integers: the container is single-writer by contract, so there is
// nothing to synchronize. A copy of the current values is available through
// SkipSet.Stats.
type Metrics struct {
	// Inserts and Deletes count mutations that changed the set;
	// InsertsRejected and DeletesMissed count the no-op calls.
	Inserts         int64
	InsertsRejected int64
	Deletes         int64
	DeletesMissed   int64

	// Searches counts Contains and Get calls. Comparisons counts element
	// comparisons across all traversals, which makes it a direct measure
	// of how well the level structure is skipping.
	Searches    int64
	Comparisons int64

	// Grows and Trims count list-wide height rebalances.
	Grows int64
	Trims int64
}
