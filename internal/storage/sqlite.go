package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/utils"
)

const DefaultDBFile = "songqueue.sqlite3"
const errDBClientNil = "db client is nil"

// QueueRow is one queue entry. Position is the entry's index in the queue.
type QueueRow struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Position int    `gorm:"uniqueIndex:idx_queue_position"`
	SongID   string `gorm:"type:varchar(64);uniqueIndex:idx_queue_song"`
	Name     string
	Artist   string
	Type     string
	DS       string // JSON encoded difficulty list
}

func (QueueRow) TableName() string {
	return "queue_entries"
}

// SQLiteStore keeps the queue in a SQLite database through GORM.
type SQLiteStore struct {
	DB *gorm.DB
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		dbPath = DefaultDBFile
	}
	if err := utils.EnsureParentDir(dbPath); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB from gorm: %w", err)
	}

	// One writer at a time; the queue manager serialises saves anyway.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&QueueRow{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &SQLiteStore{DB: db, db: sqlDB}, nil
}

func (s *SQLiteStore) Load() ([]models.QueueEntry, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New(errDBClientNil)
	}

	var rows []QueueRow
	if err := s.DB.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: querying queue rows: %v", ErrCorrupt, err)
	}

	entries := make([]models.QueueEntry, 0, len(rows))
	for _, r := range rows {
		var ds []models.Difficulty
		if r.DS != "" {
			if err := json.Unmarshal([]byte(r.DS), &ds); err != nil {
				return nil, fmt.Errorf("%w: ds of song %s: %v", ErrCorrupt, r.SongID, err)
			}
		}
		if ds == nil {
			ds = []models.Difficulty{}
		}
		entries = append(entries, models.QueueEntry{
			ID:     r.SongID,
			Name:   r.Name,
			Artist: r.Artist,
			Type:   r.Type,
			DS:     ds,
		})
	}
	return entries, nil
}

// Save replaces every stored row with entries inside one transaction.
func (s *SQLiteStore) Save(entries []models.QueueEntry) error {
	if s == nil || s.DB == nil {
		return errors.New(errDBClientNil)
	}

	rows := make([]QueueRow, 0, len(entries))
	for i, e := range entries {
		ds, err := json.Marshal(e.DS)
		if err != nil {
			return fmt.Errorf("encoding ds of song %s: %w", e.ID, err)
		}
		rows = append(rows, QueueRow{
			Position: i,
			SongID:   e.ID,
			Name:     e.Name,
			Artist:   e.Artist,
			Type:     e.Type,
			DS:       string(ds),
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&QueueRow{}).Error; err != nil {
			return fmt.Errorf("clearing queue rows: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 500).Error; err != nil {
			return fmt.Errorf("inserting queue rows: %w", err)
		}
		return nil
	})
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
