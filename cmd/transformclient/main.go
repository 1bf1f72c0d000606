// Command transformclient connects to a transformserver, interpolates
// the server-authoritative entities it receives, and optionally sends
// its own client-authoritative pose back. Grounded on network/client.go
// for the connect/receive shape and server/cmd/server/main.go for flag
// parsing and signal handling.
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
	address := flag.String("address", "127.0.0.1:7373", "server address")
	tickRate := flag.Int("tickrate", 60, "local simulation ticks per second")
	localPlayer := flag.Int("localplayer", 0, "entity ID this client owns and sends, or -1 for none")
	sendInterval := flag.Float64("sendinterval", 0.05, "seconds between outbound client snapshots")
	bufferMultiplier := flag.Uint("buffermultiplier", 2, "buffer_time = sendinterval * this")
	entities := flag.Uint("entities", 1, "number of tracked entities")
	flag.Parse()

	world := donburi.NewWorld()
	drivers := make([]*transformsync.Driver, *entities)
	for i := range drivers {
		entry := world.Entry(world.Create(ecsbridge.Transform))
		isLocal := i == *localPlayer
		cfg := transformsync.Config{
			ClientAuthority:      isLocal,
			Channel:              transformsync.Unreliable,
			SendInterval:         float32(*sendInterval),
			BufferTimeMultiplier: uint32(*bufferMultiplier),
		}
		drivers[i] = transformsync.NewDriver(cfg, ecsbridge.EntryPose{Entry: entry}, false, true, isLocal)
	}

	cli := transport.NewClientTransport()
	cli.Connect(*address)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*tickRate))
	defer ticker.Stop()

	log.Printf("[transformclient] connecting to %s, tick rate %d/s, %d tracked entities", *address, *tickRate, *entities)

	localTime := 0.0
	dt := 1.0 / float64(*tickRate)
	for {
		select {
		case <-sigCh:
			log.Println("[transformclient] shutting down")
			cli.Disconnect()
			return
		case <-ticker.C:
			localTime += dt

			for _, batch := range cli.Inbound.Drain() {
				for _, upd := range batch.Updates {
					if int(upd.EntityID) < len(drivers) {
						// A pure client transport never receives its own
						// broadcasts, so fromServer is always true here;
						// the host-mode loopback guard only matters when
						// one process runs both sides.
						drivers[upd.EntityID].OnReceived(batch.SentAt, upd.Pose, true)
					}
				}
			}

			for i, d := range drivers {
				entityID := uint64(i)
				sendToServer := func(pose transformsync.SnapshotTransform, _ transformsync.ChannelID) error {
					return cli.Send(transport.PoseBatch{
						SentAt:  localTime,
						Updates: []transport.PoseUpdate{{EntityID: entityID, Pose: pose}},
					})
				}
				if err := d.OnTick(localTime, dt, nil, sendToServer); err != nil {
					log.Printf("[transformclient] entity %d tick error: %v", i, err)
				}
			}
		}
	}
}
