package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"forumapi/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture is a hand-written data set, usually loaded from YAML:
//
//	users:
//	  - username: dicoding
//	    fullname: Dicoding Indonesia
//	threads:
//	  - title: sebuah thread
//	    body: sebuah body thread
//	    owner: dicoding
//	    comments:
//	      - owner: dicoding
//	        content: sebuah comment
//	        likes: [dicoding]
//	        replies:
//	          - owner: dicoding
//	            content: sebuah balasan
//	            deleted: true
type Fixture struct {
	Users   []FixtureUser   `yaml:"users"`
	Threads []FixtureThread `yaml:"threads"`
}

type FixtureUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Fullname string `yaml:"fullname"`
}

type FixtureThread struct {
	Title    string           `yaml:"title"`
	Body     string           `yaml:"body"`
	Owner    string           `yaml:"owner"`
	Date     *time.Time       `yaml:"date"`
	Comments []FixtureComment `yaml:"comments"`
}

type FixtureComment struct {
	Owner   string         `yaml:"owner"`
	Content string         `yaml:"content"`
	Deleted bool           `yaml:"deleted"`
	Likes   []string       `yaml:"likes"`
	Replies []FixtureReply `yaml:"replies"`
}

type FixtureReply struct {
	Owner   string `yaml:"owner"`
	Content string `yaml:"content"`
	Deleted bool   `yaml:"deleted"`
}

// LoadFixtures reads and validates a YAML fixture file.
func LoadFixtures(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(raw)
}

// ParseFixtures decodes YAML into a Fixture. Unknown keys are rejected.
func ParseFixtures(raw []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := fx.Validate(); err != nil {
		return nil, err
	}
	return &fx, nil
}

// Validate checks that every owner and liker refers to a declared user.
func (fx *Fixture) Validate() error {
	known := make(map[string]bool, len(fx.Users))
	for i, u := range fx.Users {
		if strings.TrimSpace(u.Username) == "" {
			return fmt.Errorf("users[%d]: username is required", i)
		}
		if known[u.Username] {
			return fmt.Errorf("users[%d]: duplicate username %q", i, u.Username)
		}
		known[u.Username] = true
	}

	var errs []error
	check := func(path, username string) {
		if !known[username] {
			errs = append(errs, fmt.Errorf("%s: unknown user %q", path, username))
		}
	}
	for i, t := range fx.Threads {
		tp := fmt.Sprintf("threads[%d]", i)
		if t.Title == "" || t.Body == "" {
			errs = append(errs, fmt.Errorf("%s: title and body are required", tp))
		}
		check(tp+".owner", t.Owner)
		for j, c := range t.Comments {
			cp := fmt.Sprintf("%s.comments[%d]", tp, j)
			check(cp+".owner", c.Owner)
			for _, liker := range c.Likes {
				check(cp+".likes", liker)
			}
			for k, r := range c.Replies {
				check(fmt.Sprintf("%s.replies[%d].owner", cp, k), r.Owner)
			}
		}
	}
	return errors.Join(errs...)
}

// ApplyFixtures writes fx in one transaction. Children are dated one second
// after their predecessor so the stored order matches the file order.
func (s *Seeder) ApplyFixtures(ctx context.Context, fx *Fixture) (*Summary, error) {
	summary := &Summary{}
	apply := func(f *Factory) error {
		users := make(map[string]*models.User, len(fx.Users))
		for _, u := range fx.Users {
			user, err := f.CreateUser(func(m *models.User) {
				m.Username = u.Username
				if u.Password != "" {
					m.Password = u.Password
				}
				if u.Fullname != "" {
					m.Fullname = u.Fullname
				}
			})
			if err != nil {
				return fmt.Errorf("user %s: %w", u.Username, err)
			}
			users[u.Username] = user
			summary.Users++
		}

		clock := time.Now().UTC().Add(-24 * time.Hour).Truncate(time.Second)
		tick := func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		}

		for _, t := range fx.Threads {
			date := tick()
			if t.Date != nil {
				date = t.Date.UTC()
			}
			thread, err := f.CreateThread(users[t.Owner], func(m *models.Thread) {
				m.Title, m.Body, m.Date = t.Title, t.Body, date
			})
			if err != nil {
				return fmt.Errorf("thread %q: %w", t.Title, err)
			}
			summary.Threads++
			if date.After(clock) {
				clock = date
			}

			for _, c := range t.Comments {
				comment, err := f.CreateComment(users[c.Owner], thread, func(m *models.Comment) {
					m.Content, m.IsDelete, m.Date = c.Content, c.Deleted, tick()
				})
				if err != nil {
					return fmt.Errorf("comment on %q: %w", t.Title, err)
				}
				summary.Comments++

				for _, r := range c.Replies {
					if _, err := f.CreateReply(users[r.Owner], comment, func(m *models.Reply) {
						m.Content, m.IsDelete, m.Date = r.Content, r.Deleted, tick()
					}); err != nil {
						return fmt.Errorf("reply on %q: %w", t.Title, err)
					}
					summary.Replies++
				}
				for _, liker := range c.Likes {
					if err := f.CreateLike(users[liker], comment); err != nil {
						return fmt.Errorf("like by %s: %w", liker, err)
					}
					summary.Likes++
				}
			}
		}
		return nil
	}

	if s.opts.DryRun {
		if err := apply(s.factory); err != nil {
			return nil, err
		}
	} else if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		f := *s.factory
		f.db = tx
		return apply(&f)
	}); err != nil {
		return nil, err
	}

	log.Printf("📄 Fixtures applied: %s", summary)
	return summary, nil
}
