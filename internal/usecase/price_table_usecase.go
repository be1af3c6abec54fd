package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"refrigeracao_os/internal/domain/entities"
	"refrigeracao_os/internal/domain/pricing"
	"refrigeracao_os/internal/infrastructure/metrics"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPriceTableUseCase owns the in-memory price table.
//
// Every edit is written through to the store before it becomes visible:
//   - sanitize and apply the edit to a copy
//   - persist the copy (insert when no record exists, update otherwise)
//   - reload the latest record and swap it in
//
// A failed persist leaves the in-memory table untouched.
type IPriceTableUseCase interface {
	Get(ctx context.Context) (entities.PriceTable, error)
	Resolver(ctx context.Context) (*pricing.Resolver, error)
	ResolveInstallationPrice(ctx context.Context, category entities.EquipmentCategory, capacity entities.Capacity) (string, error)
	ResolveCleaningPrice(ctx context.Context, category entities.EquipmentCategory) (string, error)
	SetUniformInstallationPrice(ctx context.Context, category entities.EquipmentCategory, raw string) (entities.PriceTable, error)
	SetInstallationPrice(ctx context.Context, category entities.EquipmentCategory, capacity entities.Capacity, raw string) (entities.PriceTable, error)
	SetCleaningPrice(ctx context.Context, category entities.EquipmentCategory, raw string) (entities.PriceTable, error)
}

type PriceTableUseCase struct {
	repo interfaces.IPriceTableRepository

	// mu serializes loads and writes; HTTP handlers call in concurrently.
	mu     sync.Mutex
	table  entities.PriceTable
	loaded bool
}

var _ IPriceTableUseCase = (*PriceTableUseCase)(nil)

func NewPriceTableUseCase(repo interfaces.IPriceTableRepository) *PriceTableUseCase {
	return &PriceTableUseCase{repo: repo}
}

func (u *PriceTableUseCase) Get(ctx context.Context) (entities.PriceTable, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.PriceTable{}, err
	}
	return u.table.Clone(), nil
}

// Resolver returns a resolver over a snapshot of the current table.
func (u *PriceTableUseCase) Resolver(ctx context.Context) (*pricing.Resolver, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return pricing.NewResolver(u.table), nil
}

func (u *PriceTableUseCase) ResolveInstallationPrice(ctx context.Context, category entities.EquipmentCategory, capacity entities.Capacity) (string, error) {
	r, err := u.Resolver(ctx)
	if err != nil {
		return "", err
	}
	return r.ResolveInstallationPrice(category, capacity)
}

func (u *PriceTableUseCase) ResolveCleaningPrice(ctx context.Context, category entities.EquipmentCategory) (string, error) {
	r, err := u.Resolver(ctx)
	if err != nil {
		return "", err
	}
	return r.ResolveCleaningPrice(category)
}

func (u *PriceTableUseCase) SetUniformInstallationPrice(ctx context.Context, category entities.EquipmentCategory, raw string) (entities.PriceTable, error) {
	log.Printf("[pricetable][usecase] uniform installation write start category=%s", category)
	return u.write(ctx, func(r *pricing.Resolver) error {
		return r.SetUniformInstallationPrice(category, raw)
	})
}

func (u *PriceTableUseCase) SetInstallationPrice(ctx context.Context, category entities.EquipmentCategory, capacity entities.Capacity, raw string) (entities.PriceTable, error) {
	log.Printf("[pricetable][usecase] installation write start category=%s capacity=%d", category, capacity)
	return u.write(ctx, func(r *pricing.Resolver) error {
		return r.SetInstallationPrice(category, capacity, raw)
	})
}

func (u *PriceTableUseCase) SetCleaningPrice(ctx context.Context, category entities.EquipmentCategory, raw string) (entities.PriceTable, error) {
	log.Printf("[pricetable][usecase] cleaning write start category=%s", category)
	return u.write(ctx, func(r *pricing.Resolver) error {
		return r.SetCleaningPrice(category, raw)
	})
}

func (u *PriceTableUseCase) write(ctx context.Context, apply func(r *pricing.Resolver) error) (entities.PriceTable, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.ensureLoaded(ctx); err != nil {
		return entities.PriceTable{}, err
	}

	r := pricing.NewResolver(u.table)
	if err := apply(r); err != nil {
		log.Printf("[pricetable][usecase] write rejected err=%v", err)
		return entities.PriceTable{}, err
	}

	next := r.Table()
	next.Revision = u.table.Revision + 1
	next.UpdatedAt = time.Now().UTC()

	saved, err := u.repo.Save(ctx, next)
	metrics.RecordPriceTableWrite(err)
	if err != nil {
		log.Printf("[pricetable][usecase] persist failed revision=%d err=%v", next.Revision, err)
		return entities.PriceTable{}, err
	}

	u.table = u.reload(ctx, saved)
	log.Printf("[pricetable][usecase] write success id=%s revision=%d", u.table.ID, u.table.Revision)
	return u.table.Clone(), nil
}

// reload reads the latest record back. A reload that fails or lags behind the
// revision just written keeps the written copy, so this process never observes a
// table older than its own last successful write.
func (u *PriceTableUseCase) reload(ctx context.Context, written entities.PriceTable) entities.PriceTable {
	latest, err := u.repo.GetLatest(ctx)
	if err != nil {
		log.Printf("[pricetable][usecase] reload failed, keeping written copy revision=%d err=%v", written.Revision, err)
		return written
	}
	if latest.ID == "" || latest.Revision < written.Revision {
		log.Printf("[pricetable][usecase] stale reload ignored written=%d read=%d", written.Revision, latest.Revision)
		return written
	}
	return latest
}

// ensureLoaded must be called with mu held. The first load seeds and persists the
// default table when the store is empty.
func (u *PriceTableUseCase) ensureLoaded(ctx context.Context) error {
	if u.loaded {
		return nil
	}

	t, err := u.repo.GetLatest(ctx)
	if err != nil {
		log.Printf("[pricetable][usecase] load failed err=%v", err)
		return err
	}
	if t.ID == "" {
		log.Printf("[pricetable][usecase] store empty, seeding defaults")
		now := time.Now().UTC()
		seed := pricing.DefaultPriceTable()
		seed.ID = uuid.NewString()
		seed.Revision = 1
		seed.CreatedAt = now
		seed.UpdatedAt = now

		t, err = u.repo.Save(ctx, seed)
		metrics.RecordPriceTableWrite(err)
		if err != nil {
			log.Printf("[pricetable][usecase] seeding failed err=%v", err)
			return err
		}
	}

	u.table = t
	u.loaded = true
	return nil
}
