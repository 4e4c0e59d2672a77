package encode

// Phase4Connectivity is intentionally a no-op: the encoder does not emit
// connectivity clauses. Expressing "the selected edges form a single
// component" as CNF would require reachability constraints whose size
// defeats the point of a compact encoding. Connectivity is instead enforced
// by each search engine's validate-and-block loop (see solution.Validate and
// solution.BlockingClause), which every engine package shares.
func (b *Builder) Phase4Connectivity() {}
