// Package models holds the catalog's persistent record types.
//
// Entity types:
//   - [Video] : a catalog entry for one YouTube tab video
//   - [Settings] : the singleton site settings record
//
// Partial-update types ([VideoUpdate], [SettingsUpdate]) use pointer fields so
// handlers can distinguish "absent" from "set to empty".
package models
