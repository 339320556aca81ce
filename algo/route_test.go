package algo

import (
	"math"
	"testing"

	"heli-route/model"
	"heli-route/utils"
)

func wp(lat, lng float64) model.Waypoint {
	return model.Waypoint{Lat: lat, Lng: lng}
}

func TestBuildSegments(t *testing.T) {
	// 少于 2 个航点没有航段
	if segs := BuildSegments(nil); segs != nil {
		t.Errorf("BuildSegments(nil) -> %v, expected nil", segs)
	}
	if segs := BuildSegments([]model.Waypoint{wp(52.24, 6.865)}); segs != nil {
		t.Errorf("BuildSegments single -> %v, expected nil", segs)
	}

	waypoints := []model.Waypoint{wp(0, 0), wp(0, 1), wp(1, 1)}
	segs := BuildSegments(waypoints)
	if len(segs) != 2 {
		t.Fatalf("BuildSegments 3 waypoints -> %d segments, expected 2", len(segs))
	}

	// 每段记录的是终点航点的序号 (从 1 开始)
	if segs[0].PointIndex != 2 || segs[1].PointIndex != 3 {
		t.Errorf("PointIndex -> %d, %d; expected 2, 3", segs[0].PointIndex, segs[1].PointIndex)
	}

	if math.Abs(segs[0].Distance-111195) > 1 {
		t.Errorf("segment distance -> %f, expected ~111195", segs[0].Distance)
	}
	if math.Abs(segs[0].Bearing-90) > 1e-9 {
		t.Errorf("segment bearing -> %f, expected 90", segs[0].Bearing)
	}
}

func TestTotalDistanceDegenerate(t *testing.T) {
	if d := TotalDistance(nil); d != 0 {
		t.Errorf("TotalDistance(nil) -> %f, expected 0", d)
	}
	if d := TotalDistance([]model.Waypoint{}); d != 0 {
		t.Errorf("TotalDistance(empty) -> %f, expected 0", d)
	}
	if d := TotalDistance([]model.Waypoint{wp(52.24, 6.865)}); d != 0 {
		t.Errorf("TotalDistance(single) -> %f, expected 0", d)
	}
}

func TestTotalDistanceAdditive(t *testing.T) {
	waypoints := []model.Waypoint{wp(0, 0), wp(0, 1), wp(1, 1), wp(1, 0)}

	sum := 0.0
	for i := 0; i+1 < len(waypoints); i++ {
		p1 := model.Point{Lat: waypoints[i].Lat, Lng: waypoints[i].Lng}
		p2 := model.Point{Lat: waypoints[i+1].Lat, Lng: waypoints[i+1].Lng}
		sum += utils.HaversineDistance(p1, p2)
	}

	if d := TotalDistance(waypoints); math.Abs(d-sum) > 1e-9 {
		t.Errorf("TotalDistance -> %f, expected %f", d, sum)
	}
}
