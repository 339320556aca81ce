package algo

import (
	"math"
	"strings"
	"testing"

	"heli-route/model"
)

func TestBuildDiagramDegenerate(t *testing.T) {
	// 少于 2 个航点不生成图
	if d := BuildDiagram(nil, 400, 400, LabelIndex); d != nil {
		t.Errorf("BuildDiagram(nil) -> %v, expected nil", d)
	}
	if d := BuildDiagram([]model.Waypoint{wp(52.24, 6.865)}, 400, 400, LabelIndex); d != nil {
		t.Errorf("BuildDiagram single -> %v, expected nil", d)
	}

	// 没有图也就没有比例尺
	if sb := BuildScaleBar(nil, 400, 400); sb != nil {
		t.Errorf("BuildScaleBar(nil) -> %v, expected nil", sb)
	}
}

func TestBuildDiagramLongestSegment(t *testing.T) {
	// 最长一段在画布上应占较短边的 60%
	waypoints := []model.Waypoint{wp(0, 0), wp(0, 2), wp(0.5, 2)}
	d := BuildDiagram(waypoints, 400, 300, LabelIndex)
	if d == nil {
		t.Fatal("BuildDiagram -> nil")
	}

	maxLen := 0.0
	for _, seg := range d.Segments {
		dx := seg.X2 - d.Center.X
		dy := seg.Y2 - d.Center.Y
		if l := math.Sqrt(dx*dx + dy*dy); l > maxLen {
			maxLen = l
		}
	}

	expected := 0.6 * 300
	if math.Abs(maxLen-expected) > 1e-9 {
		t.Errorf("longest canvas segment -> %f, expected %f", maxLen, expected)
	}
}

func TestBuildDiagramCollinearNorth(t *testing.T) {
	// 纬度递增的三个共线航点: 方位角都是 0, 线段笔直朝上 (x 不变, y 减小)
	waypoints := []model.Waypoint{wp(0, 0), wp(1, 0), wp(2, 0)}
	d := BuildDiagram(waypoints, 400, 400, LabelIndex)
	if d == nil {
		t.Fatal("BuildDiagram -> nil")
	}

	for _, seg := range d.Segments {
		if math.Abs(seg.Bearing) > 1e-9 {
			t.Errorf("bearing -> %f, expected 0", seg.Bearing)
		}
		if math.Abs(seg.X2-d.Center.X) > 1e-9 {
			t.Errorf("x2 -> %f, expected center x %f", seg.X2, d.Center.X)
		}
		if seg.Y2 >= d.Center.Y {
			t.Errorf("y2 -> %f, expected < center y %f", seg.Y2, d.Center.Y)
		}
	}
}

func TestBuildDiagramCoincident(t *testing.T) {
	// 两个重合航点: 距离 0, 比例系数退化为 1 而不是除零
	p := wp(52.24, 6.865)
	d := BuildDiagram([]model.Waypoint{p, p}, 400, 400, LabelIndex)
	if d == nil {
		t.Fatal("BuildDiagram -> nil")
	}
	if d.ScaleFactor != 1 {
		t.Errorf("ScaleFactor -> %f, expected 1", d.ScaleFactor)
	}

	seg := d.Segments[0]
	if seg.Distance != 0 {
		t.Errorf("Distance -> %f, expected 0", seg.Distance)
	}
	if seg.X2 != d.Center.X || seg.Y2 != d.Center.Y {
		t.Errorf("endpoint -> (%f, %f), expected center (%f, %f)",
			seg.X2, seg.Y2, d.Center.X, d.Center.Y)
	}
}

func TestBuildDiagramShape(t *testing.T) {
	waypoints := []model.Waypoint{wp(0, 0), wp(0, 1)}
	d := BuildDiagram(waypoints, 400, 300, LabelIndex)
	if d == nil {
		t.Fatal("BuildDiagram -> nil")
	}

	if d.ViewBox != "0 0 400 300" {
		t.Errorf("ViewBox -> %q, expected \"0 0 400 300\"", d.ViewBox)
	}
	if d.Center.X != 200 || d.Center.Y != 150 {
		t.Errorf("Center -> (%f, %f), expected (200, 150)", d.Center.X, d.Center.Y)
	}
	if len(d.Segments) != 1 {
		t.Fatalf("segments -> %d, expected 1", len(d.Segments))
	}
}

func TestBuildScaleBar(t *testing.T) {
	waypoints := []model.Waypoint{wp(0, 0), wp(0, 1), wp(1, 1)}
	d := BuildDiagram(waypoints, 400, 400, LabelIndex)
	sb := BuildScaleBar(d, 400, 400)
	if sb == nil {
		t.Fatal("BuildScaleBar -> nil")
	}

	// 比例尺代表的真实距离 * 比例系数 = 比例尺的画布长度
	if got := sb.Distance * d.ScaleFactor; math.Abs(got-ScaleBarLength) > 1e-9 {
		t.Errorf("Distance*ScaleFactor -> %f, expected %f", got, ScaleBarLength)
	}

	// 横置于画布底部居中
	if sb.Y1 != sb.Y2 {
		t.Errorf("scale bar not horizontal: y1 %f, y2 %f", sb.Y1, sb.Y2)
	}
	if math.Abs((sb.X2-sb.X1)-ScaleBarLength) > 1e-9 {
		t.Errorf("scale bar length -> %f, expected %f", sb.X2-sb.X1, ScaleBarLength)
	}
	if mid := (sb.X1 + sb.X2) / 2; math.Abs(mid-200) > 1e-9 {
		t.Errorf("scale bar midpoint -> %f, expected 200", mid)
	}
	if sb.Y1 <= 200 || sb.Y1 >= 400 {
		t.Errorf("scale bar y -> %f, expected in lower half", sb.Y1)
	}
}

func TestSegmentLabels(t *testing.T) {
	waypoints := []model.Waypoint{wp(0, 0), wp(0, 1)}

	d := BuildDiagram(waypoints, 400, 400, LabelIndex)
	if d.Segments[0].Label != "2" {
		t.Errorf("index label -> %q, expected \"2\"", d.Segments[0].Label)
	}

	d = BuildDiagram(waypoints, 400, 400, LabelFull)
	label := d.Segments[0].Label
	if !strings.HasPrefix(label, "2:") || !strings.Contains(label, "90°") {
		t.Errorf("full label -> %q, expected index, bearing and distance", label)
	}
}
