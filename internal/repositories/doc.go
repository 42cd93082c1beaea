// Package repositories is the persistence layer for the video catalog.
//
// Repositories:
//   - [VideoRepository] : CRUD, search and aggregate counts over the videos table
//   - [SettingsRepository] : singleton site settings, upsert semantics
//
// Both take an open *sql.DB and return [shared.ErrNotFound] /
// [shared.ErrDuplicate] instead of driver errors; nothing here opens
// connections or reads config.
package repositories
