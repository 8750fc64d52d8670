package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"parceltrack/internal/adapters/out/postgres/catalogrepo"
	"parceltrack/internal/adapters/out/postgres/historyrepo"
	"parceltrack/internal/adapters/out/postgres/packagerepo"
	"parceltrack/internal/adapters/out/postgres/userrepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionConfig describes the database and the pool limits.
type ConnectionConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c ConnectionConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Open builds a lib/pq connection pool, checks it with a ping and hands it to GORM.
// The caller closes the pool through db.DB().
func Open(ctx context.Context, cfg ConnectionConfig) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open connection pool: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.Name, err)
	}

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return db, nil
}

// Models lists every table owned by the service in migration order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.PackageTypeDTO{},
		&catalogrepo.PackageStatusDTO{},
		&catalogrepo.FacilityDTO{},
		&packagerepo.PackageDTO{},
		&packagerepo.RetiredTrackingNumberDTO{},
		&historyrepo.StatusHistoryDTO{},
	}
}

// foreignKey is a named constraint added after AutoMigrate. The DTOs carry no
// associations, so GORM does not create these itself.
type foreignKey struct {
	model     any
	name      string
	table     string
	column    string
	refTable  string
	refColumn string
	onDelete  string
}

func (fk foreignKey) ddl() string {
	stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
		fk.table, fk.name, fk.column, fk.refTable, fk.refColumn)
	if fk.onDelete != "" {
		stmt += " ON DELETE " + fk.onDelete
	}
	return stmt
}

// ForeignKeyNames lists the constraints Migrate guarantees.
func ForeignKeyNames() []string {
	names := make([]string, 0, len(foreignKeys()))
	for _, fk := range foreignKeys() {
		names = append(names, fk.name)
	}
	return names
}

func foreignKeys() []foreignKey {
	packages := packagerepo.PackageDTO{}.TableName()
	history := historyrepo.StatusHistoryDTO{}.TableName()
	users := userrepo.UserDTO{}.TableName()

	return []foreignKey{
		{&packagerepo.PackageDTO{}, packagerepo.FKSender, packages, "sender_id", users, "id", ""},
		{&packagerepo.PackageDTO{}, packagerepo.FKReceiver, packages, "receiver_id", users, "id", ""},
		{&packagerepo.PackageDTO{}, packagerepo.FKType, packages, "type_id",
			catalogrepo.PackageTypeDTO{}.TableName(), "id", ""},
		{&historyrepo.StatusHistoryDTO{}, historyrepo.FKPackage, history, "tracking_number",
			packages, "tracking_number", "CASCADE"},
		{&historyrepo.StatusHistoryDTO{}, historyrepo.FKStatus, history, "status_id",
			catalogrepo.PackageStatusDTO{}.TableName(), "id", ""},
		{&historyrepo.StatusHistoryDTO{}, historyrepo.FKFacility, history, "facility_id",
			catalogrepo.FacilityDTO{}.TableName(), "id", ""},
	}
}

// Migrate creates or alters the schema to match the DTOs, then adds the foreign
// keys that are still missing.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	migrator := db.Migrator()
	for _, fk := range foreignKeys() {
		if migrator.HasConstraint(fk.model, fk.name) {
			continue
		}
		if err := db.Exec(fk.ddl()).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}
	return nil
}
