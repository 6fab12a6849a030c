package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/moyu-x/file-organizer/config"
	"github.com/moyu-x/file-organizer/pkg/logger"
	"github.com/moyu-x/file-organizer/pkg/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <cities...>",
	Short: "查询城市当前天气",
	Long: `通过 OpenWeatherMap 接口查询一个或多个城市的当前天气。
多个城市并发查询，查询结果缓存在本地 SQLite 数据库中。
API key 从配置文件或 FILE_ORGANIZER_API_KEY 环境变量读取。`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWeather,
}

func runWeather(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return err
	}

	units, _ := cmd.Flags().GetString("units")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	client := weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey, units, logger.Get())

	if !noCache {
		cachePath := expandHome(cfg.Weather.CachePath)
		if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
			logger.Get().Warn().Err(err).Msg("创建缓存目录失败，本次查询不使用缓存")
		} else {
			ttl := time.Duration(cfg.Weather.CacheTTL) * time.Minute
			cache, err := weather.NewCache(cachePath, ttl)
			if err != nil {
				logger.Get().Warn().Err(err).Msg("打开缓存失败，本次查询不使用缓存")
			} else {
				defer cache.Close()
				client = client.WithCache(cache)
			}
		}
	}

	pool, err := weather.NewFetchPool(client, cfg.Weather.Workers)
	if err != nil {
		return fmt.Errorf("创建查询池失败: %w", err)
	}
	defer pool.Close()

	results := pool.FetchAll(cmd.Context(), args)

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			logger.Get().Error().Err(result.Error).Msgf("查询失败: %s", result.City)
			continue
		}
		printReport(result.Report)
	}

	if failed == len(results) {
		return fmt.Errorf("全部 %d 个城市查询失败", failed)
	}

	return nil
}

func printReport(r *weather.Report) {
	location := r.City
	if r.Country != "" {
		location += ", " + r.Country
	}
	if r.FromCache {
		location += " (缓存)"
	}

	fmt.Println("==============================")
	fmt.Println(location)
	fmt.Printf("  温度: %.1f° (体感 %.1f°)\n", r.Temperature, r.FeelsLike)
	fmt.Printf("  湿度: %d%%\n", r.Humidity)
	fmt.Printf("  风速: %.1f\n", r.WindSpeed)
	if r.Description != "" {
		fmt.Printf("  天气: %s\n", r.Description)
	}
}

// expandHome 展开路径中的 ~ 前缀
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func init() {
	weatherCmd.Flags().String("units", "metric", "单位: metric 或 imperial")
	weatherCmd.Flags().Bool("no-cache", false, "跳过本地缓存")

	rootCmd.AddCommand(weatherCmd)
}
