// Package db provides the database layer for the SDE prep tracker.
// It encapsulates all interactions with the underlying SQL database, managing
// data persistence for the application domains: users, problems, practice
// sessions, system design topics, behavioral stories, the weekly curriculum,
// daily tasks and the progress journal.
//
// This package is responsible for:
// - Establishing and managing database connections (`db.go`).
// - Defining database-specific data structures that map to SQL table schemas.
// - Implementing repository interfaces (e.g., `ProblemRepository`, `PlanRepository`)
//   to perform CRUD operations.
// - Handling data conversion between domain-specific structs (from the `domain` package)
//   and database-friendly structs, including the use of `sql.Null*` types for nullable fields.
// - Managing database migrations (`migrations/`).
// - Providing common database utility types (`types.go`).
package db
