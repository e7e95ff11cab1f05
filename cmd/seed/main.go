// Command main runs the database seeder for the forum.
package main

import (
	"context"
	"flag"
	"log"

	"forumapi/internal/bootstrap"
	"forumapi/internal/config"
	"forumapi/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.NumUsers, "Number of users to create")
	numThreads := flag.Int("threads", defaults.NumThreads, "Number of threads to create")
	comments := flag.Int("comments", defaults.CommentsPerThread, "Comments per thread")
	replies := flag.Int("replies", defaults.RepliesPerComment, "Replies per comment")
	likeRatio := flag.Float64("like-ratio", defaults.LikeRatio, "Chance that a user likes a comment")
	deleteRatio := flag.Float64("delete-ratio", defaults.DeleteRatio, "Chance that a comment or reply is soft deleted")
	maxDays := flag.Int("max-days", defaults.MaxDays, "Spread generated dates over this many days")
	randSeed := flag.Int64("rand-seed", 0, "Seed for reproducible data (0 = time based)")
	fixtures := flag.String("fixtures", "", "Load this YAML fixture file instead of generating data")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plain passwords (local development only)")
	dryRun := flag.Bool("dry-run", false, "Log generated rows without writing them")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg, bootstrap.Options{SkipRedis: true})
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer rt.Close()

	s := seed.NewSeeder(rt.DB, seed.Options{
		NumUsers:          *numUsers,
		NumThreads:        *numThreads,
		CommentsPerThread: *comments,
		RepliesPerComment: *replies,
		LikeRatio:         *likeRatio,
		DeleteRatio:       *deleteRatio,
		MaxDays:           *maxDays,
		SkipBcrypt:        *skipBcrypt,
		DryRun:            *dryRun,
		RandSeed:          *randSeed,
	})

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if *fixtures != "" {
		fx, err := seed.LoadFixtures(*fixtures)
		if err != nil {
			log.Fatalf("❌ Fixtures invalid: %v", err)
		}
		if _, err := s.ApplyFixtures(ctx, fx); err != nil {
			log.Fatalf("❌ Fixture seeding failed: %v", err)
		}
	} else if _, err := s.Run(ctx); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 Generated users have the password: %s", seed.DefaultPassword)
}
