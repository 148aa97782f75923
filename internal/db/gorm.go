package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type GormDB struct {
	db *gorm.DB
}

// NewPostgresDB opens a gorm connection to the postgres instance behind dsn.
func NewPostgresDB(dsn string) (*GormDB, error) {
	return NewGormDB(postgres.Open(dsn))
}

func NewGormDB(dialector gorm.Dialector) (*GormDB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &GormDB{
		db: db,
	}, nil
}

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Seed inserts records only when the records' table is still empty.
func (f *GormDB) Seed(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	slice := v.Elem()
	if slice.Len() == 0 {
		return nil
	}

	elemType := slice.Index(0).Addr().Interface()
	var count int64
	if err := f.db.WithContext(ctx).Model(elemType).Count(&count).Error; err != nil {
		return fmt.Errorf("get model count: %w", err)
	}

	if count > 0 {
		return nil
	}

	if err := f.db.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", translate(err))
	}

	return nil
}

func (f *GormDB) Create(ctx context.Context, record any) error {
	if err := f.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", translate(err))
	}
	return nil
}

func (f *GormDB) GetBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *GormDB) GetAll(ctx context.Context, entities any) error {
	if err := f.db.WithContext(ctx).Order("id ASC").Find(entities).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// Update overwrites every column of the row matching record's primary key,
// except the omitted ones.
func (f *GormDB) Update(ctx context.Context, record any, omit ...string) error {
	tx := f.db.WithContext(ctx).Model(record).Select("*").Omit(omit...).Updates(record)
	if tx.Error != nil {
		return fmt.Errorf("update record: %w", translate(tx.Error))
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with the given primary key and scans the deleted
// row back into record.
func (f *GormDB) Delete(ctx context.Context, record any, id any) error {
	tx := f.db.WithContext(ctx).Clauses(clause.Returning{}).Delete(record, id)
	if tx.Error != nil {
		return fmt.Errorf("delete record: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}
