// SPDX-License-Identifier: MIT
package reftables

import "math"

// Ideal point tables for the five recognised structure types. Point 0 is
// always the origin; points 1..N are antipodal-paired where the
// structure admits it, matching the neighbour-position convention the
// cubic mapping-permutation tables (cubicmapping.go) were derived
// against.

func scPoints() [][3]float64 {
	return [][3]float64{
		{0, 0, 0},
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
}

func fccPoints() [][3]float64 {
	inv := 1.0 / math.Sqrt2
	return [][3]float64{
		{0, 0, 0},
		{inv, inv, 0}, {-inv, -inv, 0},
		{inv, -inv, 0}, {-inv, inv, 0},
		{inv, 0, inv}, {-inv, 0, -inv},
		{inv, 0, -inv}, {-inv, 0, inv},
		{0, inv, inv}, {0, -inv, -inv},
		{0, inv, -inv}, {0, -inv, inv},
	}
}

func bccPoints() [][3]float64 {
	c := 1.0 / math.Sqrt(3)
	f := 2.0 / math.Sqrt(3)
	return [][3]float64{
		{0, 0, 0},
		{c, c, c}, {-c, -c, -c},
		{c, c, -c}, {-c, -c, c},
		{c, -c, c}, {-c, c, -c},
		{-c, c, c}, {c, -c, -c},
		{f, 0, 0}, {-f, 0, 0},
		{0, f, 0}, {0, -f, 0},
		{0, 0, f}, {0, 0, -f},
	}
}

func hcpPoints() [][3]float64 {
	points := make([][3]float64, 0, 13)
	points = append(points, [3]float64{0, 0, 0})
	for k := 0; k < 6; k++ {
		theta := float64(k) * math.Pi / 3
		points = append(points, [3]float64{math.Cos(theta), math.Sin(theta), 0})
	}
	upperR := 1.0 / math.Sqrt(3)
	upperZ := math.Sqrt(2.0 / 3.0)
	for k := 0; k < 3; k++ {
		theta := math.Pi/6 + float64(k)*2*math.Pi/3
		points = append(points, [3]float64{upperR * math.Cos(theta), upperR * math.Sin(theta), upperZ})
	}
	for k := 0; k < 3; k++ {
		theta := -math.Pi/6 + float64(k)*2*math.Pi/3
		points = append(points, [3]float64{upperR * math.Cos(theta), upperR * math.Sin(theta), -upperZ})
	}
	return points
}

func icoPoints() [][3]float64 {
	phi := (1 + math.Sqrt(5)) / 2
	norm := 1.0 / math.Sqrt(1+phi*phi)
	type pair struct{ a, b float64 }
	signs := []pair{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	points := make([][3]float64, 0, 13)
	points = append(points, [3]float64{0, 0, 0})
	for _, s := range signs {
		points = append(points, [3]float64{0, s.a * norm, s.b * phi * norm})
	}
	for _, s := range signs {
		points = append(points, [3]float64{s.a * norm, s.b * phi * norm, 0})
	}
	for _, s := range signs {
		points = append(points, [3]float64{s.a * phi * norm, 0, s.b * norm})
	}
	return points
}
