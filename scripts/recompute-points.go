package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/waaagh-api/internal/catalogue"
	"github.com/KirkDiggler/waaagh-api/internal/engine"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
)

// Recomputes the cached unit points of every army in Redis against the
// current catalogue. Run it after changing catalogue costs.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	cat, err := loadCatalogue(os.Getenv("CATALOGUE_PATH"))
	if err != nil {
		log.Fatal("Failed to load catalogue:", err)
	}

	repo, err := armylistrepo.NewRedis(&armylistrepo.RedisConfig{Client: client})
	if err != nil {
		log.Fatal("Failed to create army repository:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Printf("Checking stored armies against the %s catalogue...\n", cat.Faction())

	listed, err := repo.List(ctx, armylistrepo.ListInput{})
	if err != nil {
		log.Fatal("Failed to list armies:", err)
	}

	var stale []armylistrepo.UpdateInput
	for _, army := range listed.Armies {
		changed := false
		for i := range army.Units {
			unit := &army.Units[i]
			before := unit.ComputedPoints
			if !engine.RecomputeUnitPoints(unit, cat) {
				fmt.Printf("? %s: unit %s uses unknown datasheet %s\n", army.ID, unit.InstanceID, unit.DatasheetID)
				continue
			}
			if unit.ComputedPoints != before {
				fmt.Printf("✗ %s: unit %s (%s) cached %dpts, now %dpts\n",
					army.ID, unit.InstanceID, unit.DatasheetID, before, unit.ComputedPoints)
				changed = true
			}
		}
		if changed {
			stale = append(stale, armylistrepo.UpdateInput{Army: army})
		}
	}

	fmt.Printf("\nChecked %d armies, found %d with stale points\n", len(listed.Armies), len(stale))

	if len(stale) == 0 {
		fmt.Println("All cached points are current!")
		return
	}

	// Ask for confirmation before writing
	fmt.Print("\nDo you want to SAVE the recomputed points? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response) // nolint:errcheck // empty input means no

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, input := range stale {
		if _, err := repo.Update(ctx, input); err != nil {
			fmt.Printf("Failed to update %s: %v\n", input.Army.ID, err)
		} else {
			fmt.Printf("Updated %s (%dpts)\n", input.Army.ID, engine.TotalPoints(input.Army))
		}
	}
	fmt.Println("\nRecompute complete!")
}

func loadCatalogue(path string) (catalogue.Catalogue, error) {
	if path == "" {
		return catalogue.Default()
	}
	return catalogue.LoadFile(path)
}
