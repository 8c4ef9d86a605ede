package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/mythic-editor/internal/queue"
	"github.com/jwebster45206/mythic-editor/internal/storage"
	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/mechanic"
	"github.com/jwebster45206/mythic-editor/pkg/mob"
	queuePkg "github.com/jwebster45206/mythic-editor/pkg/queue"
	"github.com/jwebster45206/mythic-editor/pkg/targeter"
	"github.com/jwebster45206/mythic-editor/pkg/trigger"
)

// test-enqueue saves a sample draft (or uses -draft) and queues jobs for
// it, for exercising a running worker by hand.
func main() {
	redisURL := flag.String("redis", "redis://localhost:6379", "Redis URL")
	draftFlag := flag.String("draft", "", "existing draft id; a sample draft is saved when empty")
	wait := flag.Duration("wait", 0, "how long to poll for the jobs to finish")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	client, err := queue.NewClient(ctx, *redisURL, logger)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer client.Close()
	q := queue.NewExportQueue(client)

	fmt.Println("Connected to Redis successfully!")

	var draftID uuid.UUID
	if *draftFlag != "" {
		if draftID, err = uuid.Parse(*draftFlag); err != nil {
			log.Fatal("Invalid draft id:", err)
		}
	} else {
		store, err := storage.NewRedisStorage(*redisURL, time.Hour, logger)
		if err != nil {
			log.Fatal("Failed to configure storage:", err)
		}
		defer store.Close()

		d := draft.New(sampleMob())
		if err := store.SaveDraft(ctx, d); err != nil {
			log.Fatal("Failed to save sample draft:", err)
		}
		draftID = d.ID
		fmt.Printf("✅ Saved sample draft: %s\n", draftID)
	}

	var jobs []*queuePkg.Job
	for _, t := range []queuePkg.JobType{queuePkg.JobTypeCheck, queuePkg.JobTypeExport} {
		job := queuePkg.NewJob(t, draftID)
		if err := q.Enqueue(ctx, job); err != nil {
			log.Fatal("Failed to enqueue job:", err)
		}
		jobs = append(jobs, job)
		fmt.Printf("✅ Enqueued %s job: %s\n", t, job.RequestID)
	}

	depth, err := q.Depth(ctx)
	if err != nil {
		log.Fatal("Failed to get queue depth:", err)
	}
	fmt.Printf("\n📊 Queue depth: %d jobs\n", depth)

	if *wait == 0 {
		fmt.Println("\n💡 Now start the worker to see it process these jobs!")
		fmt.Println("   Run: go run ./cmd/worker")
		return
	}

	deadline := time.Now().Add(*wait)
	for _, job := range jobs {
		for {
			status, err := q.GetStatus(ctx, job.RequestID)
			if err != nil {
				log.Fatal("Failed to read status:", err)
			}
			if status == nil {
				fmt.Printf("%s %s: status expired\n", job.Type, job.RequestID[:8])
				break
			}
			if status.State == queuePkg.StateDone || status.State == queuePkg.StateFailed {
				fmt.Printf("%s %s: %s %s%s\n", job.Type, job.RequestID[:8], status.State, status.Path, status.Error)
				break
			}
			if time.Now().After(deadline) {
				fmt.Printf("%s %s: still %s\n", job.Type, job.RequestID[:8], status.State)
				break
			}
			time.Sleep(200 * time.Millisecond)
		}
	}
}

func sampleMob() *mob.Mob {
	m := mob.New()
	m.Name = "Test Imp"
	m.Kind = "Blaze"
	m.Health = 20
	s := m.AddSkill()
	s.Mechanic = &mechanic.Ignite{Ticks: 60}
	s.Targeter = targeter.Single(targeter.Target)
	s.Trigger = trigger.Attack
	return m
}
