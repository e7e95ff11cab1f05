// Package seed provides helpers to create demo data for the forum database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"forumapi/internal/models"
	"forumapi/internal/security"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plain password of every generated user.
const DefaultPassword = "password123"

// Factory builds forum entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic counter for DryRun mode
	nextID uint
	// cached hash, bcrypt is too slow to run per user
	passwordHash string
	rnd          *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	seed := opts.RandSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	//nolint:gosec // weak random is fine for seeding
	return &Factory{db: db, opts: opts, nextID: 1000, rnd: rand.New(rand.NewSource(seed))}
}

func (f *Factory) id(prefix string) string {
	if f.opts.DryRun {
		f.nextID++
		return fmt.Sprintf("%s-%d", prefix, f.nextID)
	}
	return prefix + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:21]
}

// hashPassword hashes password once per distinct value.
func (f *Factory) hashPassword(password string) (string, error) {
	if f.opts.SkipBcrypt {
		return password, nil
	}
	if password == DefaultPassword && f.passwordHash != "" {
		return f.passwordHash, nil
	}
	hasher := &security.BcryptHasher{Cost: bcrypt.DefaultCost}
	hashed, err := hasher.Hash(password)
	if err != nil {
		return "", err
	}
	if password == DefaultPassword {
		f.passwordHash = hashed
	}
	return hashed, nil
}

// pastDate returns a random moment within the last MaxDays days.
func (f *Factory) pastDate() time.Time {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}
	back := time.Duration(f.rnd.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rnd.Intn(24))*time.Hour +
		time.Duration(f.rnd.Intn(60))*time.Minute
	return time.Now().UTC().Add(-back).Truncate(time.Millisecond)
}

// after returns a moment between base and now, so children never predate
// their parent.
func (f *Factory) after(base time.Time) time.Time {
	span := time.Since(base)
	if span <= time.Millisecond {
		return base
	}
	return base.Add(time.Duration(f.rnd.Int63n(int64(span)))).Truncate(time.Millisecond)
}

func (f *Factory) create(value any, label string) error {
	if f.opts.DryRun {
		log.Printf("[dry-run] %s: %+v", label, value)
		return nil
	}
	return f.db.Create(value).Error
}

// CreateUser constructs and persists a sample user. Overrides may modify the
// generated user before the password is hashed and the row is saved.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		ID:       f.id("user"),
		Username: strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Password: DefaultPassword,
		Fullname: gofakeit.Name(),
	}
	for _, override := range overrides {
		override(user)
	}
	if len(user.Username) > 50 {
		user.Username = user.Username[:50]
	}

	hashed, err := f.hashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	if err := f.create(user, "CreateUser"); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateThread constructs and persists a thread owned by owner.
func (f *Factory) CreateThread(owner *models.User, overrides ...func(*models.Thread)) (*models.Thread, error) {
	thread := &models.Thread{
		ID:    f.id("thread"),
		Title: strings.TrimSuffix(gofakeit.Sentence(6), "."),
		Body:  gofakeit.Paragraph(1, 3, 12, "\n"),
		Owner: owner.ID,
		Date:  f.pastDate(),
	}
	for _, override := range overrides {
		override(thread)
	}
	if err := f.create(thread, "CreateThread"); err != nil {
		return nil, err
	}
	return thread, nil
}

// CreateComment constructs and persists a comment on thread.
func (f *Factory) CreateComment(owner *models.User, thread *models.Thread, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		ID:       f.id("comment"),
		ThreadID: thread.ID,
		Content:  gofakeit.Sentence(12),
		Owner:    owner.ID,
		IsDelete: f.opts.DeleteRatio > 0 && f.rnd.Float64() < f.opts.DeleteRatio,
		Date:     f.after(thread.Date),
	}
	for _, override := range overrides {
		override(comment)
	}
	if err := f.create(comment, "CreateComment"); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateReply constructs and persists a reply to comment.
func (f *Factory) CreateReply(owner *models.User, comment *models.Comment, overrides ...func(*models.Reply)) (*models.Reply, error) {
	reply := &models.Reply{
		ID:        f.id("reply"),
		CommentID: comment.ID,
		Content:   gofakeit.Sentence(8),
		Owner:     owner.ID,
		IsDelete:  f.opts.DeleteRatio > 0 && f.rnd.Float64() < f.opts.DeleteRatio,
		Date:      f.after(comment.Date),
	}
	for _, override := range overrides {
		override(reply)
	}
	if err := f.create(reply, "CreateReply"); err != nil {
		return nil, err
	}
	return reply, nil
}

// CreateLike records that user likes comment.
func (f *Factory) CreateLike(user *models.User, comment *models.Comment) error {
	like := &models.CommentLike{ID: f.id("like"), CommentID: comment.ID, UserID: user.ID}
	return f.create(like, "CreateLike")
}
