// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package frequency

import (
	"math"

	"github.com/bitmark-inc/numkit/fault"
)

// Statistics - central tendency and dispersion
type Statistics struct {
	Count    int     `json:"count" yaml:"count"`
	Mean     float64 `json:"mean" yaml:"mean"`
	SD       float64 `json:"sd" yaml:"sd"`
	Range    float64 `json:"range" yaml:"range"`
	Variance float64 `json:"variance" yaml:"variance"`
	CV       float64 `json:"cv" yaml:"cv"` // percent
	Median   float64 `json:"median" yaml:"median"`
	Q1       float64 `json:"q1" yaml:"q1"`
	Q3       float64 `json:"q3" yaml:"q3"`
	IQR      float64 `json:"iqr" yaml:"iqr"`
}

// round to hundredths, half away from zero
func round(x float64) float64 {
	return math.Round(100*x) / 100
}

// Summarise - statistics of values sorted in ascending order
//
// the standard deviation is the sample deviation, zero for a single
// value; the coefficient of variation is zero for a zero mean
func Summarise(v []float64) (*Statistics, error) {
	n := len(v)
	if 0 == n {
		return nil, fault.ErrNoData
	}

	s := &Statistics{
		Count: n,
	}

	sum := 0.0
	for _, x := range v {
		sum += x
	}
	s.Mean = round(sum / float64(n))

	if n > 1 {
		dev := 0.0
		for _, x := range v {
			d := x - s.Mean
			dev += round(d * d)
		}
		s.SD = round(math.Sqrt(round(dev / float64(n-1))))
	}
	s.Range = round(v[n-1] - v[0])
	s.Variance = round(s.SD * s.SD)
	if 0 != s.Mean {
		s.CV = round(s.SD * 100 / s.Mean)
	}

	if 0 == n%2 {
		m := (n - 1) / 2
		s.Median = round((v[m+1] + v[m]) / 2)
	} else {
		s.Median = v[n/2]
	}

	if 0 == n%4 {
		q := (n - 1) / 4
		s.Q1 = round((v[q+1] + v[q]) / 2)
	} else {
		s.Q1 = v[(n-1)/4]
	}

	if 0 == n*3%4 {
		q := n * 3 / 4
		s.Q3 = round((v[q-1] + v[q]) / 2)
	} else {
		s.Q3 = v[n*3/4]
	}

	s.IQR = s.Q3 - s.Q1
	return s, nil
}
