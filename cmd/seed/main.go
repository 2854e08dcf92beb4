// Command main generates a dataset file for PromptVault.
package main

import (
	"flag"
	"log"

	"promptvault/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 12, "Number of users to generate")
	numPrompts := flag.Int("prompts", 40, "Number of prompts to generate")
	maxDays := flag.Int("max-days", 90, "Spread prompt timestamps over this many days")
	rngSeed := flag.Int64("seed", 0, "Random seed for reproducible output (0 = random)")
	static := flag.Bool("static", false, "Write the built-in static preset instead of generating")
	out := flag.String("out", "dataset.yaml", "Output file path")
	flag.Parse()

	log.Println("🌱 Dataset Generator")
	log.Println("====================")

	ds := seed.Static()
	if *static {
		log.Println("Writing built-in static preset")
	} else {
		log.Printf("Target: %d users, %d prompts over %d days\n", *numUsers, *numPrompts, *maxDays)
		ds = seed.Generate(seed.Options{
			Users:   *numUsers,
			Prompts: *numPrompts,
			MaxDays: *maxDays,
			Seed:    *rngSeed,
		})
	}

	if err := seed.Validate(ds); err != nil {
		log.Fatalf("❌ Generated dataset failed validation: %v", err)
	}

	if err := seed.WriteFile(*out, ds); err != nil {
		log.Fatalf("❌ Write failed: %v", err)
	}

	log.Printf("✅ Wrote %d users, %d prompts, %d creators to %s",
		len(ds.Users), len(ds.Prompts), len(ds.Creators), *out)
}
