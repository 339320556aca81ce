package handler

import (
	"net/http"

	"heli-route/db"
	"heli-route/model"

	"github.com/gin-gonic/gin"
)

// MapViewRequest 保存地图视图请求 (中心点 + 缩放级别)
type MapViewRequest struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom" binding:"min=0,max=22"`
}

// GetMapView 读取上次保存的地图视图, 页面打开时用于恢复
func GetMapView(c *gin.Context) {
	var view model.MapView
	if err := db.DB.First(&view).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取地图视图失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}

// SaveMapView 保存当前地图视图 (前端在拖动/缩放结束后调用)
func SaveMapView(c *gin.Context) {
	var req MapViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	if !validCoords(req.Lat, req.Lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "坐标超出范围"})
		return
	}

	var view model.MapView
	if err := db.DB.First(&view).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取地图视图失败: " + err.Error()})
		return
	}

	view.Lat = req.Lat
	view.Lng = req.Lng
	view.Zoom = req.Zoom
	if err := db.DB.Save(&view).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存地图视图失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
