package algo

import (
	"fmt"
	"math"

	"heli-route/model"
	"heli-route/utils"
)

// 段标签模式: 只标航点序号, 或序号 + 方位角 + 距离
const (
	LabelIndex = "index"
	LabelFull  = "full"
)

// ScaleBarLength 比例尺在画布上的固定长度 (画布单位)
const ScaleBarLength = 100.0

// 最长一段航程占较短画布边的比例
const maxSegmentRatio = 0.6

// DiagramSegment 投影到画布上的一段航程, 起点始终是画布中心
type DiagramSegment struct {
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	PointIndex int     `json:"pointIndex"`
	Distance   float64 `json:"distance"`
	Bearing    float64 `json:"bearing"`
	Label      string  `json:"label,omitempty"`
}

// Diagram 航线放射图: 每段航程从画布中心出发, 按方位角画一条有向线段,
// 长度与真实距离成比例
type Diagram struct {
	ViewBox     string           `json:"viewBox"`
	Center      model.PointXY    `json:"center"`
	Segments    []DiagramSegment `json:"segments"`
	ScaleFactor float64          `json:"scaleFactor"` // 画布单位 / 米
}

// ScaleBar 比例尺: 画布底部居中的一条横线及其代表的真实距离
type ScaleBar struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Distance float64 `json:"distance"` // 米
}

// BuildDiagram 把航线投影成固定尺寸的放射图
// 算法:
//  1. 少于 2 个航点时不生成图, 返回 nil
//  2. 逐段计算距离和方位角 (见 BuildSegments)
//  3. scaleFactor = 0.6 * min(w,h) / 最长段距离; 所有航点重合时取 1, 避免除零
//  4. 极坐标转画布坐标: x = cx + L*sin(θ), y = cy - L*cos(θ)
//     (屏幕 y 轴朝下, 方位角 0 度 = 正北 = 朝上 = y 减小)
func BuildDiagram(waypoints []model.Waypoint, width, height float64, labelMode string) *Diagram {
	segments := BuildSegments(waypoints)
	if segments == nil {
		return nil
	}

	maxDist := 0.0
	for _, seg := range segments {
		if seg.Distance > maxDist {
			maxDist = seg.Distance
		}
	}

	scaleFactor := 1.0
	if maxDist > 0 {
		scaleFactor = maxSegmentRatio * math.Min(width, height) / maxDist
	}

	cx, cy := width/2, height/2
	projected := make([]DiagramSegment, 0, len(segments))
	for _, seg := range segments {
		length := seg.Distance * scaleFactor
		rad := utils.DegreesToRadians(seg.Bearing)
		projected = append(projected, DiagramSegment{
			X2:         cx + length*math.Sin(rad),
			Y2:         cy - length*math.Cos(rad),
			PointIndex: seg.PointIndex,
			Distance:   seg.Distance,
			Bearing:    seg.Bearing,
			Label:      segmentLabel(seg, labelMode),
		})
	}

	return &Diagram{
		ViewBox:     fmt.Sprintf("0 0 %g %g", width, height),
		Center:      model.PointXY{X: cx, Y: cy},
		Segments:    projected,
		ScaleFactor: scaleFactor,
	}
}

// segmentLabel 生成段标签文本
func segmentLabel(seg Segment, mode string) string {
	if mode == LabelFull {
		return fmt.Sprintf("%d: %.0f° %.0fm", seg.PointIndex, seg.Bearing, seg.Distance)
	}
	return fmt.Sprintf("%d", seg.PointIndex)
}

// BuildScaleBar 由放射图的比例系数反推比例尺代表的真实距离,
// 横置于画布底部居中位置; 没有图时返回 nil
func BuildScaleBar(d *Diagram, width, height float64) *ScaleBar {
	if d == nil {
		return nil
	}

	y := height - 20
	return &ScaleBar{
		X1:       width/2 - ScaleBarLength/2,
		Y1:       y,
		X2:       width/2 + ScaleBarLength/2,
		Y2:       y,
		Distance: ScaleBarLength / d.ScaleFactor,
	}
}
