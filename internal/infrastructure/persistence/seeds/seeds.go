// Package seeds bootstraps an empty helpdesk with an admin account and the lookup
// values listed in a YAML file.
package seeds

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orris-inc/helpdesk/internal/domain/catalog"
	"github.com/orris-inc/helpdesk/internal/domain/user"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

type AdminSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	// Service defaults to the first configured admin service.
	Service string `yaml:"service"`
}

type File struct {
	Admin    *AdminSeed `yaml:"admin"`
	Statuses []string   `yaml:"statuses"`
	Products []string   `yaml:"products"`
	Services []string   `yaml:"services"`
	Roles    []string   `yaml:"roles"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

func (f *File) entries() map[catalog.Kind][]string {
	return map[catalog.Kind][]string{
		catalog.KindStatus:  f.Statuses,
		catalog.KindProduct: f.Products,
		catalog.KindService: f.Services,
		catalog.KindRole:    f.Roles,
	}
}

// Result counts what a run created; existing rows are skipped.
type Result struct {
	AdminCreated bool
	AdminID      uint
	Created      map[catalog.Kind]int
	Skipped      int
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Seeder struct {
	users         user.Repository
	lookups       catalog.Repository
	hasher        user.PasswordHasher
	txManager     TransactionManager
	adminServices []string
	logger        logger.Interface
}

func NewSeeder(
	users user.Repository,
	lookups catalog.Repository,
	hasher user.PasswordHasher,
	txManager TransactionManager,
	adminServices []string,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		users:         users,
		lookups:       lookups,
		hasher:        hasher,
		txManager:     txManager,
		adminServices: adminServices,
		logger:        logger,
	}
}

// Run applies f in one transaction. Lookup rows are authored by the seeded admin.
func (s *Seeder) Run(ctx context.Context, f *File) (*Result, error) {
	result := &Result{Created: make(map[catalog.Kind]int)}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if f.Admin == nil {
			return fmt.Errorf("seed file has no admin section")
		}

		admin, created, err := s.ensureAdmin(ctx, f.Admin)
		if err != nil {
			return err
		}
		result.AdminID = admin.ID()
		result.AdminCreated = created

		entries := f.entries()
		// the admin's own service must be selectable on the registration form
		entries[catalog.KindService] = append([]string{admin.Service()}, entries[catalog.KindService]...)

		for _, kind := range catalog.Kinds {
			for _, key := range entries[kind] {
				ok, err := s.ensureEntry(ctx, kind, key, admin.ID())
				if err != nil {
					return err
				}
				if ok {
					result.Created[kind]++
				} else {
					result.Skipped++
				}
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seeding failed", "error", err)
		return nil, err
	}

	s.logger.Infow("seeding completed",
		"admin_id", result.AdminID,
		"admin_created", result.AdminCreated,
		"skipped", result.Skipped)
	return result, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context, seed *AdminSeed) (*user.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, strings.TrimSpace(seed.Email))
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	service := strings.TrimSpace(seed.Service)
	if service == "" && len(s.adminServices) > 0 {
		service = s.adminServices[0]
	}
	if len(seed.Password) < 6 {
		return nil, false, fmt.Errorf("admin password must be at least 6 characters long")
	}

	hash, err := s.hasher.Hash(seed.Password)
	if err != nil {
		return nil, false, err
	}

	admin, err := user.NewUser(seed.Username, seed.Email, hash, service)
	if err != nil {
		return nil, false, fmt.Errorf("invalid admin: %w", err)
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

func (s *Seeder) ensureEntry(ctx context.Context, kind catalog.Kind, key string, authorID uint) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return false, nil
	}

	existing, err := s.lookups.GetByKey(ctx, kind, key)
	if err != nil {
		return false, fmt.Errorf("failed to look up %s %q: %w", kind, key, err)
	}
	if existing != nil {
		return false, nil
	}

	entry, err := catalog.NewEntry(kind, key, authorID)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", kind, key, err)
	}
	if err := s.lookups.Create(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}
