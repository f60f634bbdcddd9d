// Package core turns a daily traffic series into chart plans and drives a
// render pass over them.
//
// Counters are sampled once a week on a chosen weekday. Daily and running-sum
// charts sample the whole series; snapshot charts are windowed from the first
// day their cumulative counter is above zero. Four or more samples get a
// not-a-knot cubic spline evaluated on the ordinal day axis.
package core
