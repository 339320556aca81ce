package algo

import (
	"heli-route/model"
	"heli-route/utils"
)

// Segment 相邻两个航点之间的一段航程
type Segment struct {
	PointIndex int     `json:"point_index"` // 终点航点在航线中的序号 (从 1 开始)
	Distance   float64 `json:"distance"`    // 大圆距离 (米)
	Bearing    float64 `json:"bearing"`     // 初始方位角 (度, [0,360))
}

// BuildSegments 按相邻航点对 (i, i+1) 逐段计算距离和方位角
// 少于 2 个航点时返回 nil
func BuildSegments(waypoints []model.Waypoint) []Segment {
	if len(waypoints) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		p1 := model.Point{Lat: waypoints[i].Lat, Lng: waypoints[i].Lng}
		p2 := model.Point{Lat: waypoints[i+1].Lat, Lng: waypoints[i+1].Lng}
		segments = append(segments, Segment{
			PointIndex: i + 2, // 终点是第 i+1 个航点 (0 起), 序号从 1 起即 i+2
			Distance:   utils.HaversineDistance(p1, p2),
			Bearing:    utils.InitialBearing(p1, p2),
		})
	}
	return segments
}

// TotalDistance 航线总距离 (米), 即相邻航点对距离之和
// 少于 2 个航点时为 0
func TotalDistance(waypoints []model.Waypoint) float64 {
	total := 0.0
	for _, seg := range BuildSegments(waypoints) {
		total += seg.Distance
	}
	return total
}
