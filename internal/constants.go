package internal

const (
	// 天气缓存数据库默认路径
	DefaultCachePath = "~/.file-organizer/weather.db"

	// 天气查询默认工作线程数
	DefaultWeatherWorkers = 4
)
