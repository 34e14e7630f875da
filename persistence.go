package advent

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	gorm "gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func (c *PersistenceConfig) DSN() string {
	var params []string
	for _, prag := range c.SQLitePragmas {
		params = append(params, fmt.Sprintf("_pragma=%s", prag))
	}
	params = append(params, c.SQLiteOptions...)

	var path strings.Builder
	path.WriteString(filepath.Join(c.Path, c.Name))
	if len(params) > 0 {
		path.WriteRune('?')
		path.WriteString(strings.Join(params, "&"))
	}
	return path.String()
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	db, err := gorm.Open(sqlite.Open(config.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 100})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(&Answer{}); err != nil {
		return err
	}

	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Errorf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

func (p *Persistence) SaveAnswers(answers []*Answer) error {
	if len(answers) == 0 {
		return nil
	}

	if result := p.DB.Create(&answers); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return nil
}

// History returns the most recent answers, newest first. An empty puzzle
// name matches every puzzle; limit <= 0 means no limit.
func (p *Persistence) History(puzzle string, limit int) ([]Answer, error) {
	q := p.DB.Order("created_at desc").Order("id desc")
	if puzzle != "" {
		q = q.Where("puzzle = ?", puzzle)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var answers []Answer
	if result := q.Find(&answers); result.Error != nil {
		return nil, fmt.Errorf("Failed to load answer history: %w", result.Error)
	}
	return answers, nil
}

// Latest returns the most recent answer for puzzle and part on the input
// with the given digest, or nil if it was never solved.
func (p *Persistence) Latest(puzzle string, part uint, digest string) (*Answer, error) {
	var answer Answer
	result := p.DB.
		Where("puzzle = ? AND part = ? AND input_digest = ?", puzzle, part, digest).
		Order("id desc").
		First(&answer)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, fmt.Errorf("Failed to load latest answer: %w", result.Error)
	}
	return &answer, nil
}
