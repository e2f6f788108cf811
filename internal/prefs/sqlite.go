// 包 prefs 提供偏好设置的键值存储（SQLite），目前仅保存主题（light/dark）。
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const (
	KeyTheme = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme 为未设置时的主题。
	DefaultTheme = ThemeDark
)

// ErrInvalidTheme 表示主题取值不在 light/dark 之内。
var ErrInvalidTheme = errors.New("theme must be light or dark")

// SQLite 封装 *sql.DB，基于 modernc.org/sqlite（纯 Go 实现）。
type SQLite struct {
	db *sql.DB
}

// OpenSQLite 打开数据库并执行自动迁移。
func OpenSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)
	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
        key TEXT PRIMARY KEY,
        value TEXT NOT NULL,
        updated_at TIMESTAMP
    );`)
	if err != nil {
		return fmt.Errorf("exec migrate: %w", err)
	}
	return nil
}

// Get 读取键值；不存在时 ok=false。
func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get pref %s: %w", key, err)
	}
	return v, true, nil
}

// Set 写入或覆盖键值。
func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO prefs(key, value, updated_at) VALUES(?,?,?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, value, time.Now())
	if err != nil {
		return fmt.Errorf("set pref %s: %w", key, err)
	}
	return nil
}

// Reset 清空全部偏好。
func (s *SQLite) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prefs`); err != nil {
		return fmt.Errorf("delete prefs: %w", err)
	}
	return nil
}

// Theme 返回当前主题；未设置或存储值非法时返回 DefaultTheme。
func (s *SQLite) Theme(ctx context.Context) (string, error) {
	v, ok, err := s.Get(ctx, KeyTheme)
	if err != nil {
		return DefaultTheme, err
	}
	if !ok || !validTheme(v) {
		return DefaultTheme, nil
	}
	return v, nil
}

// SetTheme 保存主题。
func (s *SQLite) SetTheme(ctx context.Context, theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("set theme %q: %w", theme, ErrInvalidTheme)
	}
	return s.Set(ctx, KeyTheme, theme)
}

// ToggleTheme 在 light/dark 之间切换并返回新主题。
func (s *SQLite) ToggleTheme(ctx context.Context) (string, error) {
	cur, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeLight
	if cur == ThemeLight {
		next = ThemeDark
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

func validTheme(v string) bool { return v == ThemeLight || v == ThemeDark }
