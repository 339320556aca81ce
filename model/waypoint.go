package model

import "github.com/lib/pq"

// Point 代表一个经纬度点 (WGS84)
type Point struct {
	Lat float64 // 纬度
	Lng float64 // 经度
}

// PointXY 代表画布坐标系中的一个点
type PointXY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Waypoint 航线上的一个航点 (用户点击地图依次添加)
// SortOrder 决定航点在航线中的位置，插入/删除/上下移动后仍保持严格有序
type Waypoint struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name"`
	Lat       float64        `json:"lat"`
	Lng       float64        `json:"lng"`
	SortOrder int            `json:"sort_order" gorm:"index"`
	Tags      pq.StringArray `json:"tags,omitempty" gorm:"type:text[]"` // 自定义标签, 如: ["起降点", "加油"]
}

// MapView 上次地图视图 (中心点 + 缩放级别)
// 整张表只保存一行，页面打开时用它恢复视图
type MapView struct {
	ID   uint    `json:"-" gorm:"primaryKey"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}
