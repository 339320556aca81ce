package utils

import (
	"heli-route/model"
	"math"
)

// EarthRadius 地球平均半径 (米)
const EarthRadius = 6371000.0

// DegreesToRadians 角度转弧度
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// RadiansToDegrees 弧度转角度
func RadiansToDegrees(r float64) float64 {
	return r * 180.0 / math.Pi
}

// HaversineDistance Haversine 公式 (直接计算两点间球面距离, 米)
// a 项由公式本身保证落在 [0,1]，atan2 形式对近重合点和近对跖点都数值稳定
func HaversineDistance(p1, p2 model.Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lon1 := DegreesToRadians(p1.Lng)
	lat2 := DegreesToRadians(p2.Lat)
	lon2 := DegreesToRadians(p2.Lng)

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	// a = sin²(Δlat/2) + cos(lat1) * cos(lat2) * sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	// c = 2 * atan2(√a, √(1-a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadius * c
}

// InitialBearing 初始方位角 (度, 从正北顺时针, 归一化到 [0,360))
// 两点重合时 atan2(0,0) = 0，返回 0 度
func InitialBearing(p1, p2 model.Point) float64 {
	lat1 := DegreesToRadians(p1.Lat)
	lat2 := DegreesToRadians(p2.Lat)
	dLon := DegreesToRadians(p2.Lng - p1.Lng)

	// θ = atan2(sin(Δlon)·cos(lat2), cos(lat1)·sin(lat2) − sin(lat1)·cos(lat2)·cos(Δlon))
	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) -
		math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return wrap360(RadiansToDegrees(math.Atan2(y, x)))
}

// wrap360 将角度归一化到 [0,360)
func wrap360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}
