package project

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Schema of a SQLite catalog. The site only ever reads it; the statements are
// exported so tooling and tests can build a catalog file.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	summary TEXT NOT NULL DEFAULT '',
	year INTEGER NOT NULL DEFAULT 0,
	image TEXT NOT NULL DEFAULT '',
	live TEXT,
	code TEXT,
	case_study TEXT,
	position INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS project_tags (
	project_id TEXT NOT NULL REFERENCES projects(id),
	tag TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS project_technologies (
	project_id TEXT NOT NULL REFERENCES projects(id),
	label TEXT NOT NULL,
	position INTEGER NOT NULL
);`

// LoadSQLite reads a catalog database opened read-only, then closes it.
func LoadSQLite(path string) (*Store, error) {
	dsn := "file:" + filepath.Clean(path) + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer db.Close()

	projects, err := readProjects(db)
	if err != nil {
		return nil, err
	}
	return NewStore(projects)
}

func readProjects(db *sql.DB) ([]Project, error) {
	rows, err := db.Query(`
		SELECT id, title, summary, year, image,
			COALESCE(live, ''), COALESCE(code, ''), COALESCE(case_study, '')
		FROM projects
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	index := make(map[string]int)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Year, &p.Image,
			&p.Links.Live, &p.Links.Code, &p.Links.CaseStudy); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	tags, err := db.Query(`SELECT project_id, tag FROM project_tags ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer tags.Close()
	for tags.Next() {
		var id, tag string
		if err := tags.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		if i, ok := index[id]; ok {
			projects[i].Tags = append(projects[i].Tags, tag)
		}
	}
	if err := tags.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	techs, err := db.Query(`SELECT project_id, label FROM project_technologies ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("query technologies: %w", err)
	}
	defer techs.Close()
	for techs.Next() {
		var id, label string
		if err := techs.Scan(&id, &label); err != nil {
			return nil, fmt.Errorf("scan technology: %w", err)
		}
		if i, ok := index[id]; ok {
			projects[i].Technologies = append(projects[i].Technologies, label)
		}
	}
	if err := techs.Err(); err != nil {
		return nil, fmt.Errorf("iterate technologies: %w", err)
	}

	return projects, nil
}
