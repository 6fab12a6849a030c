package weather

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Cache 基于 SQLite 的天气查询缓存
type Cache struct {
	conn *sql.DB
	ttl  time.Duration
}

// NewCache 打开或创建缓存数据库
func NewCache(dbPath string, ttl time.Duration) (*Cache, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("打开数据库失败: %w", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS weather_cache (
		city_key TEXT PRIMARY KEY,
		city TEXT,
		country TEXT,
		temperature REAL,
		feels_like REAL,
		humidity INTEGER,
		description TEXT,
		wind_speed REAL,
		fetched_at INTEGER
	);
	`

	if _, err := conn.Exec(createTableSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("创建表失败: %w", err)
	}

	return &Cache{conn: conn, ttl: ttl}, nil
}

// Close 关闭数据库连接
func (c *Cache) Close() error {
	return c.conn.Close()
}

// Get 查询缓存，只返回 TTL 内的记录
func (c *Cache) Get(city string) (*Report, bool, error) {
	row := c.conn.QueryRow(
		`SELECT city, country, temperature, feels_like, humidity, description, wind_speed, fetched_at
		 FROM weather_cache WHERE city_key = ?`,
		cacheKey(city),
	)

	var report Report
	var fetchedAt int64
	err := row.Scan(
		&report.City, &report.Country, &report.Temperature, &report.FeelsLike,
		&report.Humidity, &report.Description, &report.WindSpeed, &fetchedAt,
	)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("查询缓存失败: %w", err)
	}

	if time.Since(time.Unix(fetchedAt, 0)) > c.ttl {
		return nil, false, nil
	}

	return &report, true, nil
}

// Put 写入或更新缓存记录
func (c *Cache) Put(report *Report) error {
	_, err := c.conn.Exec(
		`INSERT INTO weather_cache (city_key, city, country, temperature, feels_like, humidity, description, wind_speed, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(city_key) DO UPDATE SET
			city = excluded.city,
			country = excluded.country,
			temperature = excluded.temperature,
			feels_like = excluded.feels_like,
			humidity = excluded.humidity,
			description = excluded.description,
			wind_speed = excluded.wind_speed,
			fetched_at = excluded.fetched_at`,
		cacheKey(report.City), report.City, report.Country, report.Temperature, report.FeelsLike,
		report.Humidity, report.Description, report.WindSpeed, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("插入缓存记录失败: %w", err)
	}
	return nil
}

func cacheKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
