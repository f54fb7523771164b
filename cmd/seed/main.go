// Command seed populates the database with development data.
package main

import (
	"flag"
	"log"

	"kapm/internal/bootstrap"
	"kapm/internal/config"
	"kapm/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numClients := flag.Int("clients", 15, "Number of clients to create")
	numPosts := flag.Int("posts", 40, "Number of blog posts to create")
	numCases := flag.Int("cases", 10, "Number of bankruptcy/restructuring case pairs")
	randSeed := flag.Int64("seed", 0, "Random seed (0 means non-deterministic)")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Run(seed.Options{
		Users:   *numUsers,
		Clients: *numClients,
		Posts:   *numPosts,
		Cases:   *numCases,
		Seed:    *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
