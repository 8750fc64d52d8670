package catalogrepo

import (
	"context"
	"errors"
	"strconv"

	"parceltrack/internal/adapters/out/postgres/pgerr"
	"parceltrack/internal/core/domain/model/catalog"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) Add(ctx context.Context, entry *catalog.Entry) (int64, error) {
	if err := entry.Validate(); err != nil {
		return 0, err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return 0, err
	}
	if err = r.db.WithContext(ctx).Create(dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return 0, errs.NewObjectAlreadyExistsError(entry.Kind().String(), entry.Name())
		}
		return 0, err
	}

	id := insertedID(dto)
	r.tracker.TrackAggregate(trackingKey(entry.Kind(), id), entry)
	return id, nil
}

func (r *GormCatalogRepository) Update(ctx context.Context, entry *catalog.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	t, err := tableFor(entry.Kind())
	if err != nil {
		return err
	}

	columns := map[string]any{t.nameColumn: entry.Name()}
	if entry.Kind().HasAddress() {
		columns["address"] = entry.Address()
	}

	result := r.db.WithContext(ctx).Model(t.model()).Where("id = ?", entry.ID()).Updates(columns)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsError(entry.Kind().String(), entry.Name())
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(entry.Kind().String(), entry.ID())
	}

	r.tracker.TrackAggregate(trackingKey(entry.Kind(), entry.ID()), entry)
	return nil
}

func (r *GormCatalogRepository) Get(ctx context.Context, kind catalog.Kind, id int64) (*catalog.Entry, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	columns := "id, " + t.nameColumn + " AS name"
	if kind.HasAddress() {
		columns += ", address"
	}

	var found row
	err = r.db.WithContext(ctx).Table(t.name).Select(columns).Where("id = ?", id).Take(&found).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(kind.String(), id)
		}
		return nil, err
	}

	return toDomain(kind, found)
}

func (r *GormCatalogRepository) Exists(ctx context.Context, kind catalog.Kind, id int64) (bool, error) {
	t, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err = r.db.WithContext(ctx).Table(t.name).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes an entry unless a package or history record still points at it.
func (r *GormCatalogRepository) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	for _, ref := range t.referrers {
		var count int64
		if err = db.Table(ref.table).Where(ref.column+" = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errs.NewObjectIsReferencedError(kind.String(), id, ref.table)
		}
	}

	// A row inserted after the counts above is caught by the foreign keys.
	result := db.Where("id = ?", id).Delete(t.model())
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errs.NewObjectIsReferencedError(kind.String(), id, t.referrers[0].table)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(kind.String(), id)
	}

	r.tracker.TrackAggregate(trackingKey(kind, id), nil)
	return nil
}

func trackingKey(kind catalog.Kind, id int64) string {
	return kind.String() + ":" + strconv.FormatInt(id, 10)
}
