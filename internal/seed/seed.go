package seed

import (
	"context"
	"fmt"
	"log"

	"forumapi/internal/models"

	"gorm.io/gorm"
)

// Options controls how much data the seeder generates.
type Options struct {
	NumUsers          int
	NumThreads        int
	CommentsPerThread int
	RepliesPerComment int
	// LikeRatio is the chance that a given user likes a given comment.
	LikeRatio float64
	// DeleteRatio is the chance that a comment or reply is soft deleted.
	DeleteRatio float64
	MaxDays     int
	SkipBcrypt  bool
	DryRun      bool
	RandSeed    int64
}

// DefaultOptions returns the sizes used by cmd/seed when no flags are given.
func DefaultOptions() Options {
	return Options{
		NumUsers:          20,
		NumThreads:        30,
		CommentsPerThread: 5,
		RepliesPerComment: 2,
		LikeRatio:         0.2,
		DeleteRatio:       0.1,
		MaxDays:           30,
	}
}

// Summary counts the rows written by a seeding run.
type Summary struct {
	Users    int
	Threads  int
	Comments int
	Replies  int
	Likes    int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d users, %d threads, %d comments, %d replies, %d likes",
		s.Users, s.Threads, s.Comments, s.Replies, s.Likes)
}

// Seeder populates the database with generated or fixture data.
type Seeder struct {
	db      *gorm.DB
	opts    Options
	factory *Factory
}

// NewSeeder creates a seeder writing through db.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, opts: opts, factory: NewFactory(db, opts)}
}

// clearOrder lists tables children first so foreign keys never block the delete.
var clearOrder = []any{
	&models.CommentLike{},
	&models.Reply{},
	&models.Comment{},
	&models.Thread{},
	&models.Authentication{},
	&models.User{},
}

// ClearAll removes every forum row.
func (s *Seeder) ClearAll(ctx context.Context) error {
	if s.opts.DryRun {
		log.Println("[dry-run] ClearAll skipped")
		return nil
	}
	log.Println("🗑️  Clearing existing data...")
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range clearOrder {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", model, err)
			}
		}
		return nil
	})
}

// Run generates users, threads, comments, replies and likes inside a single
// transaction.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	if s.opts.NumUsers <= 0 {
		return nil, fmt.Errorf("at least one user is required")
	}
	log.Printf("🌱 Seeding %d users and %d threads...", s.opts.NumUsers, s.opts.NumThreads)

	summary := &Summary{}
	run := func(f *Factory) error {
		users := make([]*models.User, 0, s.opts.NumUsers)
		for i := 0; i < s.opts.NumUsers; i++ {
			user, err := f.CreateUser()
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			users = append(users, user)
		}
		summary.Users = len(users)

		for i := 0; i < s.opts.NumThreads; i++ {
			thread, err := f.CreateThread(f.pick(users))
			if err != nil {
				return fmt.Errorf("create thread: %w", err)
			}
			summary.Threads++

			for j := 0; j < s.opts.CommentsPerThread; j++ {
				comment, err := f.CreateComment(f.pick(users), thread)
				if err != nil {
					return fmt.Errorf("create comment: %w", err)
				}
				summary.Comments++

				for k := 0; k < s.opts.RepliesPerComment; k++ {
					if _, err := f.CreateReply(f.pick(users), comment); err != nil {
						return fmt.Errorf("create reply: %w", err)
					}
					summary.Replies++
				}

				for _, user := range users {
					if f.rnd.Float64() >= s.opts.LikeRatio {
						continue
					}
					if err := f.CreateLike(user, comment); err != nil {
						return fmt.Errorf("create like: %w", err)
					}
					summary.Likes++
				}
			}
			if (i+1)%10 == 0 {
				log.Printf("Created %d threads...", i+1)
			}
		}
		return nil
	}

	if s.opts.DryRun {
		if err := run(s.factory); err != nil {
			return nil, err
		}
	} else {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			f := *s.factory
			f.db = tx
			return run(&f)
		})
		if err != nil {
			return nil, err
		}
	}

	log.Printf("🎉 Seeding completed: %s", summary)
	return summary, nil
}

func (f *Factory) pick(users []*models.User) *models.User {
	return users[f.rnd.Intn(len(users))]
}
