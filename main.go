package main

import (
	"fmt"
	"log"

	"heli-route/db"
	"heli-route/handler"

	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("=== 欢迎使用 Heli Route - 直升机航线规划工具 ===")

	// 1. 初始化数据库
	// 连接 PostgreSQL，自动迁移表结构
	// 如果是第一次运行，会写入默认地图视图; 存在 waypoints.json 时导入示例航线
	db.InitDB()

	// 2. 初始化 Gin 引擎
	r := gin.Default()

	// 3. 配置路由
	setupRoutes(r)

	// 4. 启动服务器
	fmt.Println("\n服务器启动中...")
	fmt.Println("访问地址: http://localhost:8080")
	fmt.Println("前端页面: http://localhost:8080/static/")
	fmt.Println("API 文档:")
	fmt.Println("  - POST   /api/login              - 用户登录")
	fmt.Println("  - POST   /api/register           - 用户注册")
	fmt.Println("  - GET    /api/waypoints          - 获取航线全部航点")
	fmt.Println("  - POST   /api/waypoints          - 末尾追加航点")
	fmt.Println("  - PUT    /api/waypoints/:id      - 修改航点 (改名/拖拽/标签)")
	fmt.Println("  - POST   /api/waypoints/:id/move - 上移/下移航点")
	fmt.Println("  - DELETE /api/waypoints/:id      - 删除航点")
	fmt.Println("  - GET    /api/route              - 总距离 + 放射图 + 比例尺")
	fmt.Println("  - GET    /api/view               - 读取上次地图视图")
	fmt.Println("  - PUT    /api/view               - 保存地图视图")
	fmt.Println("\n按 Ctrl+C 退出")

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}

// setupRoutes 配置路由
func setupRoutes(r *gin.Engine) {
	// CORS 跨域中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// 静态文件服务 - 提供前端页面
	r.Static("/static", "./static")

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "ok",
		})
	})

	// 根路径重定向到前端页面
	r.GET("/", func(c *gin.Context) {
		c.Redirect(302, "/static/index.html")
	})

	// API 路由组
	api := r.Group("/api")
	{
		// 公开接口 (无需认证)
		api.POST("/login", handler.Login)
		api.POST("/register", handler.Register)

		// 航点管理
		api.GET("/waypoints", handler.ListWaypoints)
		api.POST("/waypoints", handler.CreateWaypoint)
		api.PUT("/waypoints/:id", handler.UpdateWaypoint)
		api.POST("/waypoints/:id/move", handler.MoveWaypoint)
		api.DELETE("/waypoints/:id", handler.DeleteWaypoint)

		// 航线派生数据 (总距离 / 放射图 / 比例尺)
		api.GET("/route", handler.GetRoute)

		// 地图视图
		api.GET("/view", handler.GetMapView)
		api.PUT("/view", handler.SaveMapView)

		// 如果将来需要认证，可以解开下面的注释
		// authorized := api.Group("/")
		// authorized.Use(handler.AuthMiddleware())
		// {
		//     authorized.POST("/waypoints", handler.CreateWaypoint)
		// }
	}
}
