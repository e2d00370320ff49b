// Package fxroute finds the best conversion rate between two currencies
// from a list of pairwise exchange rates.
//
// Currencies are vertices, quotes are directed edges, and the best rate is
// the path with the largest product of rates. Each rate r becomes the
// additive cost -ln(r), so a shortest-path search finds that path; a cycle
// whose rates multiply above 1 (arbitrage) becomes a negative cycle and is
// reported instead of a meaningless answer.
//
// Packages:
//
//	core/         : Currency, ExchangeRate, immutable indexed Graph, search Tree
//	dijkstra/     : heap-driven search with a hop bound against negative cycles
//	bellmanford/  : |V|-1 relaxation passes plus an arbitrage detection pass
//	floydwarshall/: all-pairs closure with next-hop path recovery
//	converter/    : Solve, SolveAll, Table; error taxonomy; logging decorator
//	ratesource/   : CSV, JSON and YAML rate lists; built-in sample markets
//	render/       : path, result and table printing
//	config/       : YAML, dotenv and FXROUTE_* environment settings
//	cmd/fxroute/  : command-line front end
//
// Quick start:
//
//	res, err := converter.Solve(rates, "USD", "JAP")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(render.Path(res.Path), res.Rate)
//
// Example market ("classic"):
//
//	USD→EUR ×2    EUR→USD ×0.5   USD→CAD ×4   CAD→USD ×0.25
//	USD→JAP ×10   EUR→JAP ×3     CAD→JAP ×4
//
// The best USD→JAP rate is 16, via CAD.
package fxroute
