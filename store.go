package portfolio

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database and provides CRUD operations for blog
// posts, media assets, and localized section bundles.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Enable WAL mode for concurrent read/write access, set a busy timeout
	// so writers wait instead of returning SQLITE_BUSY immediately, and
	// avoid an fsync per transaction with synchronous=NORMAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    excerpt TEXT NOT NULL,
    author TEXT NOT NULL,
    category TEXT NOT NULL,
    tags TEXT NOT NULL,
    featured_image TEXT NOT NULL DEFAULT '',
    featured_video TEXT NOT NULL DEFAULT '',
    academic_type TEXT NOT NULL DEFAULT '',
    academic_institution TEXT NOT NULL DEFAULT '',
    academic_field TEXT NOT NULL DEFAULT '',
    published INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    reading_time INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS media (
    id TEXT PRIMARY KEY,
    filename TEXT NOT NULL,
    original_name TEXT NOT NULL,
    path TEXT NOT NULL,
    file_type TEXT NOT NULL,
    category TEXT NOT NULL,
    size INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    uploaded_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sections (
    section TEXT NOT NULL,
    lang TEXT NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (section, lang)
);

CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts(created_at);
CREATE INDEX IF NOT EXISTS idx_posts_category ON posts(category);
CREATE INDEX IF NOT EXISTS idx_media_file_type ON media(file_type);
`)
	return err
}

const postCols = `id, title, content, excerpt, author, category, tags,
	featured_image, featured_video, academic_type, academic_institution,
	academic_field, published, created_at, updated_at, reading_time`

func scanPost(row interface{ Scan(...any) error }) (BlogPost, error) {
	var p BlogPost
	var tags, academicType, academicInstitution, academicField string
	var published int
	var createdAt, updatedAt string
	if err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Excerpt, &p.Author,
		&p.Category, &tags, &p.FeaturedImage, &p.FeaturedVideo,
		&academicType, &academicInstitution, &academicField,
		&published, &createdAt, &updatedAt, &p.ReadingTime); err != nil {
		return BlogPost{}, err
	}
	p.Tags = parseTags(tags)
	p.Published = published == 1
	if academicType != "" {
		p.AcademicInfo = &AcademicInfo{
			Type:        academicType,
			Institution: academicInstitution,
			Field:       academicField,
		}
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return p, nil
}

// ListPosts returns posts matching the filter, ordered newest first
// with insertion order breaking created_at ties. Unpublished posts are
// excluded unless the filter carries the admin capability flag.
func (s *Store) ListPosts(f PostFilter) ([]BlogPost, error) {
	query := `SELECT ` + postCols + ` FROM posts`
	var conds []string
	var args []any
	if !f.IncludeUnpublished {
		conds = append(conds, `published = 1`)
	}
	if f.Category != "" {
		conds = append(conds, `category = ?`)
		args = append(args, f.Category)
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		conds = append(conds, `(instr(lower(title), ?) > 0 OR instr(lower(content), ?) > 0 OR instr(lower(excerpt), ?) > 0)`)
		args = append(args, needle, needle, needle)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at DESC, rowid ASC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns a single post by id. Unpublished posts are invisible
// unless includeUnpublished is set (admin capability).
func (s *Store) GetPost(id string, includeUnpublished bool) (BlogPost, error) {
	query := `SELECT ` + postCols + ` FROM posts WHERE id = ?`
	if !includeUnpublished {
		query += ` AND published = 1`
	}
	p, err := scanPost(s.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return BlogPost{}, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return BlogPost{}, err
	}
	return p, nil
}

// SavePost upserts a blog post. Updates keep the original rowid so
// insertion order stays stable.
func (s *Store) SavePost(p BlogPost) error {
	var academicType, academicInstitution, academicField string
	if p.AcademicInfo != nil {
		academicType = p.AcademicInfo.Type
		academicInstitution = p.AcademicInfo.Institution
		academicField = p.AcademicInfo.Field
	}
	published := 0
	if p.Published {
		published = 1
	}
	_, err := s.db.Exec(`
INSERT INTO posts (`+postCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    title = excluded.title,
    content = excluded.content,
    excerpt = excluded.excerpt,
    author = excluded.author,
    category = excluded.category,
    tags = excluded.tags,
    featured_image = excluded.featured_image,
    featured_video = excluded.featured_video,
    academic_type = excluded.academic_type,
    academic_institution = excluded.academic_institution,
    academic_field = excluded.academic_field,
    published = excluded.published,
    updated_at = excluded.updated_at,
    reading_time = excluded.reading_time`,
		p.ID, p.Title, p.Content, p.Excerpt, p.Author, p.Category,
		joinTags(p.Tags), p.FeaturedImage, p.FeaturedVideo,
		academicType, academicInstitution, academicField, published,
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
		p.UpdatedAt.UTC().Format(time.RFC3339Nano),
		p.ReadingTime)
	return err
}

// DeletePost removes a post by id, reporting ErrNotFound when no row
// matched.
func (s *Store) DeletePost(id string) error {
	res, err := s.db.Exec(`DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

// --- Media ---

// ListMedia returns media assets, optionally filtered by file type,
// newest first.
func (s *Store) ListMedia(fileType string) ([]MediaAsset, error) {
	query := `SELECT id, filename, original_name, path, file_type, category, size, description, uploaded_at FROM media`
	var args []any
	if fileType != "" {
		query += ` WHERE file_type = ?`
		args = append(args, fileType)
	}
	query += ` ORDER BY uploaded_at DESC, rowid DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []MediaAsset
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, m)
	}
	return assets, rows.Err()
}

func scanMedia(row interface{ Scan(...any) error }) (MediaAsset, error) {
	var m MediaAsset
	var uploadedAt string
	if err := row.Scan(&m.ID, &m.Filename, &m.OriginalName, &m.Path,
		&m.FileType, &m.Category, &m.Size, &m.Description, &uploadedAt); err != nil {
		return MediaAsset{}, err
	}
	m.UploadedAt, _ = time.Parse(time.RFC3339Nano, uploadedAt)
	return m, nil
}

// GetMedia returns a single media asset by id.
func (s *Store) GetMedia(id string) (MediaAsset, error) {
	m, err := scanMedia(s.db.QueryRow(`SELECT id, filename, original_name, path, file_type, category, size, description, uploaded_at FROM media WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return MediaAsset{}, fmt.Errorf("media %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return MediaAsset{}, err
	}
	return m, nil
}

// SaveMedia inserts a media asset record.
func (s *Store) SaveMedia(m MediaAsset) error {
	_, err := s.db.Exec(`INSERT INTO media (id, filename, original_name, path, file_type, category, size, description, uploaded_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Filename, m.OriginalName, m.Path, m.FileType, m.Category,
		m.Size, m.Description, m.UploadedAt.UTC().Format(time.RFC3339Nano))
	return err
}

// DeleteMedia removes a media record by id, reporting ErrNotFound when
// no row matched.
func (s *Store) DeleteMedia(id string) error {
	res, err := s.db.Exec(`DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("media %s: %w", id, ErrNotFound)
	}
	return nil
}

// mediaFilenameTaken reports whether a stored filename is already in
// use by another asset.
func (s *Store) mediaFilenameTaken(filename string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM media WHERE filename = ?`, filename).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Localized sections ---

// GetSection returns the stored JSON payload for (section, lang).
func (s *Store) GetSection(section, lang string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM sections WHERE section = ? AND lang = ?`, section, lang).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("section %s/%s: %w", section, lang, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// SaveSection upserts the JSON payload for (section, lang).
func (s *Store) SaveSection(section, lang string, payload []byte) error {
	_, err := s.db.Exec(`INSERT INTO sections (section, lang, payload) VALUES (?, ?, ?) ON CONFLICT(section, lang) DO UPDATE SET payload = excluded.payload`,
		section, lang, payload)
	return err
}

// sectionExists reports whether a variant is stored for (section, lang).
func (s *Store) sectionExists(section, lang string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sections WHERE section = ? AND lang = ?`, section, lang).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Tag encoding ---

// joinTags encodes tags as a comma-delimited string with sentinel
// commas so exact tag matching stays cheap in SQL.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ","
	}
	return "," + strings.Join(tags, ",") + ","
}

// parseTags splits a comma-delimited tag string (e.g. ",go,web,") into
// a slice.
func parseTags(tagString string) []string {
	tagString = strings.Trim(tagString, ",")
	if tagString == "" {
		return nil
	}
	parts := strings.Split(tagString, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
