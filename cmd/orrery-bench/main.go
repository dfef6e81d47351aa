// Headless driver for the orbit simulation: runs the scheduler at a fixed
// tick rate for a while and reports per-system timing, without opening a
// window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/plus3/orrery/ecs"
	"github.com/plus3/orrery/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the simulation should run for.")
	tps := flag.Int("ticks-per-sec", 60, "The simulation tick rate.")
	bodies := flag.Int("bodies", 8, "The number of orbiting bodies; cycles through the demo lineup with widening orbits.")
	flag.Parse()

	log.Println("Starting headless orbit simulation...")

	storage := ecs.NewStorage()
	ecs.PutSingleton(storage, sim.Center{X: 960, Y: 540})

	lineup := sim.Planets()
	for i := 0; i < *bodies; i++ {
		p := lineup[i%len(lineup)]
		// Widen the orbit on every repeat of the lineup so extra
		// bodies do not stack on the originals
		p.Radius += float64(i/len(lineup)) * 600
		sim.SpawnPlanet(storage, p)
	}

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&sim.OrbitSystem{})

	log.Printf("Running %d bodies at %d ticks/sec for %s...\n", *bodies, *tps, *duration)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	scheduler.Run(ctx, time.Second/time.Duration(*tps))

	stats := scheduler.GetStats()
	fmt.Printf("total executions: %d\n", stats.TotalExecutions)
	for _, sys := range stats.Systems {
		fmt.Printf("%-16s runs=%-8d avg=%-12s min=%-12s max=%s\n",
			sys.Name, sys.ExecutionCount, sys.AvgDuration, sys.MinDuration, sys.MaxDuration)
	}
}
