package handler

import (
	"fmt"
	"net/http"

	"heli-route/db"
	"heli-route/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CreateWaypointRequest 新增航点请求 (点击地图追加到航线末尾)
type CreateWaypointRequest struct {
	Lat  float64  `json:"lat"`
	Lng  float64  `json:"lng"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// UpdateWaypointRequest 修改航点请求 (改名 / 拖拽改坐标 / 改标签)
// 用指针区分 "没传" 和 "传了零值"
type UpdateWaypointRequest struct {
	Name *string   `json:"name"`
	Lat  *float64  `json:"lat"`
	Lng  *float64  `json:"lng"`
	Tags *[]string `json:"tags"`
}

// MoveWaypointRequest 调整航点顺序请求
type MoveWaypointRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// validCoords 坐标范围校验 (引擎假定输入合法, 校验在接口层做)
func validCoords(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// loadWaypoints 按 sort_order 读取整条航线
func loadWaypoints() ([]model.Waypoint, error) {
	var waypoints []model.Waypoint
	if err := db.DB.Order("sort_order asc").Find(&waypoints).Error; err != nil {
		return nil, err
	}
	return waypoints, nil
}

// ListWaypoints 获取当前航线上的全部航点 (按顺序)
func ListWaypoints(c *gin.Context) {
	waypoints, err := loadWaypoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取航点失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(waypoints),
		"waypoints": waypoints,
	})
}

// CreateWaypoint 在航线末尾追加一个航点
func CreateWaypoint(c *gin.Context) {
	var req CreateWaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	if !validCoords(req.Lat, req.Lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出范围"})
		return
	}

	// 新航点排在末尾; 删除过航点后 sort_order 可能有空洞, 用最大值+1
	var maxOrder int
	db.DB.Model(&model.Waypoint{}).
		Select("COALESCE(MAX(sort_order), -1)").Scan(&maxOrder)

	var count int64
	db.DB.Model(&model.Waypoint{}).Count(&count)

	name := req.Name
	if name == "" {
		name = fmt.Sprintf("航点 %d", count+1)
	}

	waypoint := model.Waypoint{
		ID:        uuid.NewString(),
		Name:      name,
		Lat:       req.Lat,
		Lng:       req.Lng,
		SortOrder: maxOrder + 1,
		Tags:      pq.StringArray(req.Tags),
	}

	if err := db.DB.Create(&waypoint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存航点失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, waypoint)
}

// UpdateWaypoint 修改航点 (改名、拖拽更新坐标、改标签)
func UpdateWaypoint(c *gin.Context) {
	var req UpdateWaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	var waypoint model.Waypoint
	if err := db.DB.First(&waypoint, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "航点不存在"})
		return
	}

	if req.Name != nil {
		waypoint.Name = *req.Name
	}
	if req.Lat != nil {
		waypoint.Lat = *req.Lat
	}
	if req.Lng != nil {
		waypoint.Lng = *req.Lng
	}
	if req.Tags != nil {
		waypoint.Tags = pq.StringArray(*req.Tags)
	}

	if !validCoords(waypoint.Lat, waypoint.Lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出范围"})
		return
	}

	if err := db.DB.Save(&waypoint).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存航点失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, waypoint)
}

// MoveWaypoint 上移/下移一个航点 (与相邻航点交换 sort_order)
// 已在首/尾时不动, 直接返回当前航线
func MoveWaypoint(c *gin.Context) {
	var req MoveWaypointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	waypoints, err := loadWaypoints()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取航点失败: " + err.Error()})
		return
	}

	id := c.Param("id")
	index := -1
	for i := range waypoints {
		if waypoints[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "航点不存在"})
		return
	}

	other := index - 1
	if req.Direction == "down" {
		other = index + 1
	}

	if other >= 0 && other < len(waypoints) {
		a, b := &waypoints[index], &waypoints[other]
		a.SortOrder, b.SortOrder = b.SortOrder, a.SortOrder

		err := db.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(a).Error; err != nil {
				return err
			}
			return tx.Save(b).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存顺序失败: " + err.Error()})
			return
		}

		waypoints[index], waypoints[other] = waypoints[other], waypoints[index]
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(waypoints),
		"waypoints": waypoints,
	})
}

// DeleteWaypoint 删除航点
func DeleteWaypoint(c *gin.Context) {
	result := db.DB.Delete(&model.Waypoint{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除航点失败: " + result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "航点不存在"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
