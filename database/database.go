package database

import "github.com/rs/zerolog"

type Database struct {
	postRepo         *PostRepo
	postResourceRepo *PostResourceRepo
}

// New initializes a new Database struct with each repository sharing one
// lock-guarded handle
func New(handle *Handle, logger zerolog.Logger) Database {
	return Database{
		postRepo:         NewPostRepo(handle, SystemClock, logger),
		postResourceRepo: NewPostResourceRepo(handle, logger),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) PostResourceRepo() *PostResourceRepo {
	return d.postResourceRepo
}

// InitSchema runs every model's schema init. Idempotent; called on startup.
func (d Database) InitSchema() error {
	if err := d.postRepo.InitSchema(); err != nil {
		return err
	}
	return d.postResourceRepo.InitSchema()
}
