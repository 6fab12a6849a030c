package weather

import (
	"path/filepath"
	"testing"
	"time"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()

	cache, err := NewCache(filepath.Join(t.TempDir(), "weather.db"), ttl)
	if err != nil {
		t.Fatalf("创建缓存失败: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	return cache
}

func TestCache_PutAndGet(t *testing.T) {
	cache := newTestCache(t, time.Minute)

	report := &Report{
		City:        "Pune",
		Country:     "IN",
		Temperature: 27.5,
		FeelsLike:   29.1,
		Humidity:    64,
		Description: "scattered clouds",
		WindSpeed:   3.6,
	}

	if err := cache.Put(report); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := cache.Get("Pune")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Expected cache hit")
	}

	if got.City != "Pune" || got.Temperature != 27.5 || got.Humidity != 64 {
		t.Errorf("Unexpected cached report: %+v", got)
	}
}

func TestCache_KeyIsCaseInsensitive(t *testing.T) {
	cache := newTestCache(t, time.Minute)

	if err := cache.Put(&Report{City: "Pune", Temperature: 27.5}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := cache.Get("  PUNE ")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Expected cache hit for case-insensitive key")
	}
	if got.City != "Pune" {
		t.Errorf("Expected original city name, got %q", got.City)
	}
}

func TestCache_Miss(t *testing.T) {
	cache := newTestCache(t, time.Minute)

	_, ok, err := cache.Get("Tokyo")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Expected cache miss")
	}
}

func TestCache_Expiry(t *testing.T) {
	// TTL 为零，写入后立即过期
	cache := newTestCache(t, 0)

	if err := cache.Put(&Report{City: "Pune"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	time.Sleep(1100 * time.Millisecond)

	_, ok, err := cache.Get("Pune")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Expected expired record to be a miss")
	}
}

func TestCache_Update(t *testing.T) {
	cache := newTestCache(t, time.Minute)

	if err := cache.Put(&Report{City: "Pune", Temperature: 27.5}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := cache.Put(&Report{City: "Pune", Temperature: 31.0}); err != nil {
		t.Fatalf("覆盖写入失败: %v", err)
	}

	got, ok, err := cache.Get("Pune")
	if err != nil || !ok {
		t.Fatalf("Get() error = %v, hit = %v", err, ok)
	}
	if got.Temperature != 31.0 {
		t.Errorf("Expected updated temperature 31.0, got %v", got.Temperature)
	}
}
