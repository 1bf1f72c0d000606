// Command transformserver runs a headless authoritative server for the
// snapshot interpolation engine: it accepts client connections, applies
// client-authoritative snapshots to the matching entity, and broadcasts
// each entity's pose to every connected client once per send interval.
//
// Modeled on server/cmd/server/main.go's flag parsing and
// signal-handling shape.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cxxpxr/snapsync/ecsbridge"
	"github.com/cxxpxr/snapsync/transformsync"
	"github.com/cxxpxr/snapsync/transport"
	"github.com/yohamta/donburi"
)

func main() {
	port := flag.Uint("port", 7373, "server port")
	tickRate := flag.Int("tickrate", 20, "simulation ticks per second")
	entities := flag.Uint("entities", 1, "number of client-authoritative entities to track")
	sendInterval := flag.Float64("sendinterval", 0.1, "seconds between outbound server snapshots")
	bufferMultiplier := flag.Uint("buffermultiplier", 2, "buffer_time = sendinterval * this")
	flag.Parse()

	world := donburi.NewWorld()
	drivers := make([]*transformsync.Driver, *entities)
	for i := range drivers {
		entry := world.Entry(world.Create(ecsbridge.Transform))
		cfg := transformsync.Config{
			ClientAuthority:      true,
			Channel:              transformsync.Unreliable,
			SendInterval:         float32(*sendInterval),
			BufferTimeMultiplier: uint32(*bufferMultiplier),
		}
		drivers[i] = transformsync.NewDriver(cfg, ecsbridge.EntryPose{Entry: entry}, true, false, false)
	}

	srv := transport.NewServerTransport()
	if err := srv.Start(*port); err != nil {
		log.Fatalf("[transformserver] listen: %v", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*tickRate))
	defer ticker.Stop()

	log.Printf("[transformserver] listening on port %d, tick rate %d/s, %d tracked entities", *port, *tickRate, *entities)

	localTime := 0.0
	dt := 1.0 / float64(*tickRate)
	for {
		select {
		case <-sigCh:
			log.Println("[transformserver] shutting down")
			return
		case <-ticker.C:
			localTime += dt
			for _, batch := range srv.Inbound.Drain() {
				for _, upd := range batch.Updates {
					if int(upd.EntityID) < len(drivers) {
						drivers[upd.EntityID].OnReceived(batch.SentAt, upd.Pose, false)
					}
				}
			}

			for i, d := range drivers {
				entityID := uint64(i)
				sendToClients := func(pose transformsync.SnapshotTransform, _ transformsync.ChannelID) error {
					return srv.Broadcast(transport.PoseBatch{
						SentAt:  localTime,
						Updates: []transport.PoseUpdate{{EntityID: entityID, Pose: pose}},
					})
				}
				if err := d.OnTick(localTime, dt, sendToClients, nil); err != nil {
					log.Printf("[transformserver] entity %d tick error: %v", i, err)
				}
			}
		}
	}
}
