// Package ga provides a Go implementation of a string-matching genetic algorithm.
//
// A population of random character sequences is evolved towards a target string.
// Each generation the fittest chromosomes (lowest Hamming distance to the target)
// are kept as elites and used as parents; children are produced by single-point
// crossover followed by per-gene mutation. The run stops when a chromosome matches
// the target exactly or when the generation budget is spent.
//
// All randomness flows through an explicit ga.Source, so a seeded run is
// reproducible.
//
// Basic usage:
//
//	// Load configuration
//	config, err := ga.LoadConfig("path/to/config.ini")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create generation 0
//	evolution, err := ga.NewEvolution(config, ga.NewSource(42), ga.NewStdOutReporter(os.Stdout, false))
//	if err != nil {
//		log.Fatalf("Error creating evolution: %v", err)
//	}
//
//	// Run until the target is found or max_generations is reached
//	result, err := evolution.Run(context.Background())
//	if err != nil {
//		log.Fatalf("Run interrupted: %v", err)
//	}
//	if result.State == ga.Converged {
//		fmt.Println("Solution found!")
//	}
package ga
