package handler

import (
	"net/http"
	"strconv"

	"heli-route/algo"

	"github.com/gin-gonic/gin"
)

// 放射图画布默认尺寸 (画布单位)
const (
	defaultCanvasWidth  = 400.0
	defaultCanvasHeight = 400.0
)

// RouteResponse 航线派生结果: 总距离 + 放射图 + 比例尺
// 航点少于 2 个时 diagram / scale_bar 为 null
type RouteResponse struct {
	Count         int            `json:"count"`
	TotalDistance float64        `json:"total_distance"` // 米
	Diagram       *algo.Diagram  `json:"diagram"`
	ScaleBar      *algo.ScaleBar `json:"scale_bar"`
}

// GetRoute 读取当前航线并重新计算全部派生值
// 引擎无状态, 航点序列变化后前端重新调用一次即可
func GetRoute(c *gin.Context) {
	waypoints, err := loadWaypoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取航点失败: " + err.Error()})
		return
	}

	width := queryFloat(c, "w", defaultCanvasWidth)
	height := queryFloat(c, "h", defaultCanvasHeight)
	labelMode := c.DefaultQuery("labels", algo.LabelIndex)

	diagram := algo.BuildDiagram(waypoints, width, height, labelMode)

	c.JSON(http.StatusOK, RouteResponse{
		Count:         len(waypoints),
		TotalDistance: algo.TotalDistance(waypoints),
		Diagram:       diagram,
		ScaleBar:      algo.BuildScaleBar(diagram, width, height),
	})
}

// queryFloat 读取浮点查询参数, 缺省或非法时用默认值
func queryFloat(c *gin.Context, key string, defaultVal float64) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
