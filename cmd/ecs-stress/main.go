package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/arche/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	seed := flag.Int64("seed", 1, "Seed for the entity composition RNG.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu or mem.")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "":
	default:
		log.Fatalf("unknown -profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	world := ecs.NewWorld(ecs.Options{AutoFillUnspecifiedComponentKinds: true})
	RegisterStressComponents(world)
	RegisterStressSystems(world)

	log.Printf("Populating world with %d entities...\n", *entityCount)
	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *entityCount; i++ {
		SpawnRandomEntity(world, rng)
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			world.Update()
			world.Render()
			world.UI()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(tickStart))
			totalTicks++
		}
	}

	report.TotalUpdates = totalTicks
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("generating report: %v", err)
	}

	for _, sys := range world.Scheduler().GetStats().Systems {
		log.Printf("%-10s %-40s count=%d avg=%s", sys.Phase, sys.Name, sys.ExecutionCount, sys.AvgDuration)
	}
}
