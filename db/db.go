package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"heli-route/model"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	// 先读取 .env (本地开发方便), 已设置的环境变量优先
	_ = godotenv.Load()

	host := getEnvOrDefault("DB_HOST", "localhost")
	port := getEnvOrDefault("DB_PORT", "5432")
	user := getEnvOrDefault("DB_USER", "heliuser")
	password := getEnvOrDefault("DB_PASSWORD", "helipassword")
	dbname := getEnvOrDefault("DB_NAME", "heliroute")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Shanghai",
		host, user, password, dbname, port,
	)

	// 带重试的数据库连接 (Docker 启动时数据库可能还没准备好)
	var err error
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		log.Printf("等待数据库就绪... (%d/%d): %v", i+1, maxRetries, err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}

	// 自动迁移模式 (自动创建表结构)
	err = DB.AutoMigrate(&model.User{}, &model.Waypoint{}, &model.MapView{})
	if err != nil {
		log.Fatalf("数据库迁移失败: %v", err)
	}

	// 保证地图视图表有一行默认记录
	ensureDefaultView()

	// 航点表为空且存在种子文件时导入示例航线
	var waypointCount int64
	DB.Model(&model.Waypoint{}).Count(&waypointCount)
	if waypointCount == 0 {
		if _, statErr := os.Stat("waypoints.json"); statErr == nil {
			log.Println("检测到航点表为空，正在导入 waypoints.json...")
			if err := importWaypoints("waypoints.json"); err != nil {
				log.Printf("警告: 导入航点数据失败: %v", err)
			} else {
				log.Println("示例航线导入成功!")
			}
		}
	}

	log.Println("数据库连接并初始化成功！")
}

// getEnvOrDefault 获取环境变量，如果不存在则返回默认值
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// ensureDefaultView 首次运行时写入默认地图视图 (北京市区, 缩放 12 级)
func ensureDefaultView() {
	var count int64
	DB.Model(&model.MapView{}).Count(&count)
	if count == 0 {
		view := model.MapView{Lat: 39.9042, Lng: 116.4074, Zoom: 12}
		if err := DB.Create(&view).Error; err != nil {
			log.Printf("警告: 写入默认地图视图失败: %v", err)
		}
	}
}

// importWaypoints 从 JSON 文件导入航点到数据库 (演示数据)
func importWaypoints(filepath string) error {
	file, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	var data struct {
		Waypoints []struct {
			Name string   `json:"name"`
			Lat  float64  `json:"lat"`
			Lng  float64  `json:"lng"`
			Tags []string `json:"tags,omitempty"`
		} `json:"waypoints"`
	}

	if err := json.Unmarshal(file, &data); err != nil {
		return fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if len(data.Waypoints) == 0 {
		return nil
	}

	// 批量插入航点, 按文件顺序编号
	waypoints := make([]model.Waypoint, len(data.Waypoints))
	for i, w := range data.Waypoints {
		name := w.Name
		if name == "" {
			name = fmt.Sprintf("航点 %d", i+1)
		}
		waypoints[i] = model.Waypoint{
			ID:        uuid.NewString(),
			Name:      name,
			Lat:       w.Lat,
			Lng:       w.Lng,
			SortOrder: i,
			Tags:      pq.StringArray(w.Tags),
		}
	}
	if err := DB.CreateInBatches(waypoints, 100).Error; err != nil {
		return fmt.Errorf("插入航点失败: %w", err)
	}
	log.Printf("导入了 %d 个航点", len(waypoints))

	return nil
}
