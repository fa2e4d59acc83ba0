// Profiling:
// go build ./cmd/shelfprof
// go tool pprof -http=":8000" -nodefraction=0.001 ./shelfprof mem.pprof

package main

import (
	"flag"
	"os"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/shelf"
	"github.com/pkg/profile"
)

type health struct {
	HP int64
}

func (h *health) Reset()             { *h = health{} }
func (h *health) CopyFrom(o *health) { *h = *o }

type effects struct {
	IDs []int64
}

func (e *effects) Reset() { e.IDs = e.IDs[:0] }
func (e *effects) CopyFrom(o *effects) {
	e.IDs = append(e.IDs[:0], o.IDs...)
}

type (
	actor   struct{}
	present struct{}
)

func main() {
	rounds := flag.Int("rounds", 50, "number of rounds")
	iters := flag.Int("iters", 1000, "add/remove cycles per round")
	entities := flag.Int("entities", 1000, "entities per cycle")
	verbose := flag.Bool("v", false, "log storage lifecycle")
	flag.Parse()

	level := bark.LevelInfo
	if *verbose {
		level = bark.LevelDebug
	}
	bark.Wake(bark.Config{Environment: "development", Level: level})
	logger := bark.For("shelfprof")

	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	err := run(*rounds, *iters, *entities)
	p.Stop()
	if err != nil {
		logger.Error("run failed", bark.KeyError, bark.AddTrace(err))
		os.Exit(1)
	}
	logger.Info("done", "rounds", *rounds, "iters", *iters, "entities", *entities)
}

func run(rounds, iters, numEntities int) error {
	pool := shelf.Factory.NewPool()
	for range rounds {
		live := shelf.FactoryNewComponents[actor, present](pool)
		snapshot := shelf.FactoryNewComponents[actor, present](pool)

		for range iters {
			for id := range shelf.EntityID(numEntities) {
				h := shelf.Spawn[health](live)
				h.HP = int64(id)
				shelf.Add(live, id, h)
				if id%4 == 0 {
					e := shelf.Spawn[effects](live)
					e.IDs = append(e.IDs, int64(id))
					shelf.Add(live, id, e)
				}
			}
			snapshot.CopyFrom(live)
			live.CopyFrom(snapshot)
			for id := range shelf.EntityID(numEntities) {
				live.RemoveAll(id)
			}
		}
		if err := live.Verify(); err != nil {
			return err
		}
		live.OnRecycle()
		snapshot.OnRecycle()
	}
	return nil
}
